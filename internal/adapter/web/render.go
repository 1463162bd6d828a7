package web

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"leetstats/internal/domain/model"
)

// noticeDismissMillis is how long an error notice stays visible.
const noticeDismissMillis = 5000

const dismissScript = `document.querySelectorAll("[data-dismiss-after]").forEach(function (el) {
  setTimeout(function () { el.style.display = "none"; }, Number(el.dataset.dismissAfter));
});`

type page struct {
	Username string
	Stats    *model.UserSolvedStats
	Notice   string
	NoData   bool
}

type card struct {
	Label string
	Value string
}

func renderPage(w io.Writer, p page) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(el("html", attrs("lang", "en"),
		el("head", nil,
			el("meta", attrs("charset", "utf-8")),
			el("title", nil, text("LeetCode Stats")),
		),
		el("body", nil,
			el("div", attrs("class", "container"),
				el("h1", nil, text("LeetCode Stats")),
				searchForm(p.Username),
				statsContainer(p),
			),
			el("script", nil, text(dismissScript)),
		),
	))
	return html.Render(w, doc)
}

func searchForm(username string) *html.Node {
	return el("form", attrs("class", "user-container", "method", "get", "action", "/search"),
		el("p", nil, text("Enter your username")),
		el("div", attrs("class", "user-input-container"),
			el("input", attrs(
				"type", "text",
				"id", "user-input",
				"name", "username",
				"placeholder", "enter your username here",
				"value", username,
			)),
			el("button", attrs("id", "search-btn", "type", "submit"), text("Search")),
		),
	)
}

func statsContainer(p page) *html.Node {
	container := el("div", attrs("class", "stats-container"))

	switch {
	case p.NoData:
		container.AppendChild(el("p", attrs("class", "no-data"), text("No Data Found")))
	case p.Stats != nil:
		container.AppendChild(progressSection(p.Stats))
		container.AppendChild(cardSection(statsCards(p.Stats)))
	}

	if p.Notice != "" {
		container.AppendChild(el("div", attrs(
			"class", "error-message",
			"role", "alert",
			"data-dismiss-after", strconv.Itoa(noticeDismissMillis),
		), text(p.Notice)))
	}
	return container
}

func progressSection(stats *model.UserSolvedStats) *html.Node {
	section := el("div", attrs("class", "progress"))
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		progress := stats.Progress(d)
		name := strings.ToLower(string(d))
		section.AppendChild(el("div", attrs("class", "progress-item"),
			el("div", attrs(
				"class", "circle "+name+"-progress",
				"style", fmt.Sprintf("--progress-degree: %.2f%%", progress.Percent),
			),
				el("span", attrs("id", name+"-label"), text(fmt.Sprintf("%d/%d", progress.Solved, progress.Total))),
			),
			el("p", nil, text(string(d))),
		))
	}
	return section
}

// statsCards lists submission counts, labelled when estimated, followed by the
// summary metrics the source provided.
func statsCards(stats *model.UserSolvedStats) []card {
	suffix := ""
	if stats.SubmissionsEstimated {
		suffix = " (estimated)"
	}

	cards := []card{
		{Label: "Total Submissions" + suffix + ":", Value: strconv.Itoa(stats.Submissions.Total)},
		{Label: "Easy Submissions" + suffix + ":", Value: strconv.Itoa(stats.Submissions.Easy)},
		{Label: "Medium Submissions" + suffix + ":", Value: strconv.Itoa(stats.Submissions.Medium)},
		{Label: "Hard Submissions" + suffix + ":", Value: strconv.Itoa(stats.Submissions.Hard)},
	}

	m := stats.Metrics
	if m.AcceptanceRate != nil {
		cards = append(cards, card{Label: "Acceptance Rate:", Value: strconv.FormatFloat(*m.AcceptanceRate, 'f', -1, 64) + "%"})
	}
	if m.Ranking != nil {
		cards = append(cards, card{Label: "Ranking:", Value: strconv.Itoa(*m.Ranking)})
	}
	if stats.Source == model.SourceStatsAPI {
		cards = append(cards, card{Label: "Total Solved:", Value: strconv.Itoa(stats.Solved.Total)})
		points := 0
		if m.ContributionPoints != nil {
			points = *m.ContributionPoints
		}
		cards = append(cards, card{Label: "Contribution Points:", Value: strconv.Itoa(points)})
	}
	return cards
}

func cardSection(cards []card) *html.Node {
	section := el("div", attrs("class", "stats-cards"))
	for _, c := range cards {
		section.AppendChild(el("div", attrs("class", "card"),
			el("h4", nil, text(c.Label)),
			el("p", nil, text(c.Value)),
		))
	}
	return section
}

func el(tag string, attributes []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, Attr: attributes}
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}
