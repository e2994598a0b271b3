package sim

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/repute/internal/domain/types"
)

const bannerWidth = 45

// writeStatus prints one participant's status block for the current
// simulated date.
func writeStatus(w io.Writer, st types.Status) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "User Status: %s (%s) on %s\n", st.Name, st.Class, st.Date.Format("2006-01-02"))
	fmt.Fprintf(w, "  Tenure Bonus: %.2f / %.0f\n", st.TenureBonus, st.MaxTenureBonus)
	fmt.Fprintf(w, "  Final Score: %.2f\n", st.Score)
	if st.Tier != "" {
		fmt.Fprintf(w, "  Badge: %s (%s)\n", st.Tier, st.Perks)
	} else {
		fmt.Fprintln(w, "  Badge: None")
	}
	fmt.Fprintln(w, banner)
}

// writeRanking prints the reputation ranking, best first.
func writeRanking(w io.Writer, entries []types.Entry) {
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(w, "Reputation Ranking")
	for _, e := range entries {
		fmt.Fprintf(w, "  %d. %-10s %6.2f  %s\n", e.Rank, e.Name, e.Score, e.Tier)
	}
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}
