package lstv

import (
	"strings"

	"golang.org/x/net/html"
)

// usChannels are the US-relevant channel names on LiveSoccerTV; other
// countries' listings on the same page are skipped.
var usChannels = map[string]bool{
	"Peacock":                    true,
	"NBC":                        true,
	"USA Network":                true,
	"CNBC":                       true,
	"Telemundo":                  true,
	"Telemundo Deportes En Vivo": true,
	"UNIVERSO":                   true,
	"UNIVERSO NOW":               true,
	"TeleXitos":                  true,
}

// parsePage extracts (home, away) -> US broadcaster names from one
// LiveSoccerTV page. The page interleaves match-title anchors
// (href contains /match/) with channel anchors (href contains
// /channels/), so channels are attributed to the most recent match
// title seen in document order. date tags the entries; pass "" for the
// undated competition overview page.
func parsePage(pageHTML string, date string, into Index) error {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return err
	}

	var curHome, curAway string
	var curOK bool
	var curNetworks []string

	flush := func() {
		if curOK && len(curNetworks) > 0 {
			into.Add(curHome, curAway, date, curNetworks)
		}
		curNetworks = nil
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attr(n, "href")
			text := strings.TrimSpace(nodeText(n))

			switch {
			case strings.Contains(href, "/match/") && text != "":
				flush()
				curHome, curAway, curOK = ParseMatchTitle(text)
			case strings.Contains(href, "/channels/") && curOK && usChannels[text]:
				curNetworks = append(curNetworks, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	flush()

	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
