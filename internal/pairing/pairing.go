package pairing

import (
	"fmt"
	"strings"
)

// ParseOddPolicy maps a configuration value onto an OddPolicy.
func ParseOddPolicy(s string) (OddPolicy, error) {
	switch p := OddPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case Reject, Bye, Drop:
		return p, nil
	case "":
		return Reject, nil
	default:
		return "", fmt.Errorf("unknown odd player policy %q", s)
	}
}

// Generate pairs adjacent players of an already ranked field: positions
// (0,1), (2,3) and so on. The order of standings is taken as given.
func Generate(standings []Standing, policy OddPolicy) ([]Pairing, error) {
	odd := len(standings)%2 == 1
	if odd && policy == Reject {
		return nil, fmt.Errorf("%w: %d players", ErrOddPlayerCount, len(standings))
	}

	pairings := make([]Pairing, 0, (len(standings)+1)/2)
	for i := 0; i+1 < len(standings); i += 2 {
		a, b := standings[i], standings[i+1]
		pairings = append(pairings, Pairing{ID1: a.ID, Name1: a.Name, ID2: b.ID, Name2: b.Name})
	}

	if odd {
		last := standings[len(standings)-1]
		switch policy {
		case Bye:
			pairings = append(pairings, Pairing{ID1: last.ID, Name1: last.Name})
		case Drop:
		default:
			return nil, fmt.Errorf("unknown odd player policy %q", policy)
		}
	}
	return pairings, nil
}
