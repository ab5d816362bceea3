package tui

import "github.com/go-drift/gallery/pkg/caption"

const archiveCredit = "Photographic Views of New York City, 1870s-1970s"

var archive = []caption.Footer{
	{Year: "1910", Summary: "Looking north along Fifth Avenue from 34th Street.", Credit: archiveCredit},
	{Year: "1932", Summary: "Elevated line\nat Chatham Square, looking south toward Park Row.", Credit: archiveCredit},
	{Year: "1898", Summary: "Ferry slip.", Credit: archiveCredit},
	{Year: "1941", Summary: "", Credit: archiveCredit},
	{Year: "1925", Summary: "Broadway and 42nd Street at night, with the Times Building in the distance.", Credit: archiveCredit},
}

// demoItems returns n captions cycled from the archive.
func demoItems(n int) []caption.Footer {
	if n < 0 {
		n = 0
	}
	items := make([]caption.Footer, n)
	for i := range items {
		items[i] = archive[i%len(archive)]
	}
	return items
}
