package slack

import (
	"fmt"

	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/slack-go/slack"
)

// formatPairings creates the Slack message announcing the next round.
func formatPairings(pairings []tournament.Pairing) slack.Message {
	blocks := make([]slack.Block, 0, len(pairings)+1)

	headerText := slack.NewTextBlockObject("plain_text", "♟️ Next round pairings ♟️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(pairings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players to pair yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, p := range pairings {
		var text string
		if p.IsBye() {
			text = fmt.Sprintf("Table %d: %s has a bye", i+1, p.Name1)
		} else {
			text = fmt.Sprintf("Table %d: %s vs %s", i+1, p.Name1, p.Name2)
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates the Slack message with the current standings.
func formatStandings(standings []tournament.Standing) slack.Message {
	blocks := make([]slack.Block, 0, len(standings)+1)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players registered yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, st := range standings {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Wins: %d | Losses: %d | Matches: %d",
			rank,
			medal,
			st.Name,
			st.Wins,
			st.Losses(),
			st.Matches,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
