package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"stillnight/pkg/game/renderer"
	"stillnight/pkg/game/state"
	gameworld "stillnight/pkg/game/world"
)

// WriteScreenshotHTML writes the revealed floor as a standalone HTML page
// colored with the floor's visual settings
func WriteScreenshotHTML(w io.Writer, g *state.Game) error {
	m := g.Map
	if !m.Ready() {
		return gameworld.ErrNotReady
	}
	visual := m.Visuals()
	background := visual.BackgroundColor
	if background == "" {
		background = "#1a1a2e"
	}

	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Stillnight - Screenshot</title>
    <style>
        body {
            background-color: ` + html.EscapeString(background) + `;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { font-weight: bold; }
        .status {
            margin-top: 20px;
            color: #888;
        }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	// Header
	title := fmt.Sprintf("Floor %d", m.Floor())
	if m.Floor() == gameworld.HubFloor {
		title = "Hub"
	}
	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(title))

	b.WriteString(`    <div class="map-container">` + "\n")
	for y := 0; y < m.Height(); y++ {
		b.WriteString(`        <div class="map-row">`)
		for x := 0; x < m.Width(); x++ {
			gl := renderer.CellGlyph(g, x, y, false)
			class := "cell"
			if gl.Style == renderer.StylePlayer {
				class = "player"
			}
			if gl.Color == "" {
				fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, html.EscapeString(gl.Icon))
				continue
			}
			fmt.Fprintf(&b, `<span class="%s" style="color:%s">%s</span>`,
				class, html.EscapeString(gl.Color), html.EscapeString(gl.Icon))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	fmt.Fprintf(&b, `    <div class="status">Gold: %d</div>`+"\n", g.Gold)
	for _, u := range g.Roster {
		fmt.Fprintf(&b, `    <div class="status">%s %d/%d</div>`+"\n", html.EscapeString(u.Name), u.HP, u.MaxHP)
	}

	if len(g.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, b.String())
	return err
}

// SaveScreenshotHTML saves the current floor as a timestamped HTML file
func SaveScreenshotHTML(g *state.Game) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, g); err != nil {
		return "", err
	}
	return filename, nil
}
