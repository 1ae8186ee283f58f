package render

import (
	htmlpkg "html"
	"sort"
	"strconv"
	"strings"

	"github.com/aaronzipp/blobarena/internal/models"
)

// StatusPage generates the landing page with the join link and live standings
func StatusPage(publicURL string, players []models.Player, foodCount int) string {
	url := htmlpkg.EscapeString(publicURL)
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>Blob Arena</title></head><body>`)
	b.WriteString(`<h1>Blob Arena</h1><p class="join">Join at <a href="`)
	b.WriteString(url)
	b.WriteString(`">`)
	b.WriteString(url)
	b.WriteString(`</a></p><img class="qr" src="/qr.png" alt="QR code for `)
	b.WriteString(url)
	b.WriteString(`" width="256" height="256">`)
	b.WriteString(`<p class="food-count">`)
	b.WriteString(strconv.Itoa(foodCount))
	b.WriteString(` food in play</p>`)
	b.WriteString(Leaderboard(players))
	b.WriteString(`</body></html>`)
	return b.String()
}

// Leaderboard generates HTML for the players ranked by size
func Leaderboard(players []models.Player) string {
	ranked := rankPlayers(players)
	var b strings.Builder
	b.WriteString(`<h2>Players (`)
	b.WriteString(strconv.Itoa(len(ranked)))
	b.WriteString(`)</h2>`)
	if len(ranked) == 0 {
		b.WriteString(`<p class="text-muted">Nobody is playing yet</p>`)
		return b.String()
	}
	b.WriteString(`<ol class="leaderboard">`)
	for _, p := range ranked {
		b.WriteString(`<li class="player-item"><span class="swatch" style="background:`)
		b.WriteString(htmlpkg.EscapeString(p.Color))
		b.WriteString(`"></span><span class="player-id">`)
		b.WriteString(htmlpkg.EscapeString(shortID(p.ID)))
		b.WriteString(`</span> <span class="player-size">`)
		b.WriteString(strconv.FormatFloat(p.Size, 'f', 0, 64))
		b.WriteString(`</span></li>`)
	}
	b.WriteString(`</ol>`)
	return b.String()
}

// rankPlayers sorts a copy by size descending, then ID
func rankPlayers(players []models.Player) []models.Player {
	ranked := append([]models.Player(nil), players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Size == ranked[j].Size {
			return ranked[i].ID < ranked[j].ID
		}
		return ranked[i].Size > ranked[j].Size
	})
	return ranked
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
