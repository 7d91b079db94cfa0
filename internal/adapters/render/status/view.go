package status

import (
	"fmt"
	"strings"

	"github.com/bnema/flychain-wallet/internal/application"
	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const balanceSymbol = "AVAX"

type RenderOptions struct {
	// Storage describes where the snapshot lives, e.g. "file (~/.flychain/...)".
	Storage string
	// ShortAddress abbreviates addresses to 0x1234…abcd.
	ShortAddress bool
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("FlyChain Wallet"),
	}
	if opts.Storage != "" {
		lines = append(lines, s.header.Render("storage: "+opts.Storage))
	}

	session := status.Session
	if !session.IsConnected() {
		lines = append(lines,
			s.section.Render(s.disconnected.Render("● disconnected")),
			s.empty.Render("No wallet connected. Run `flychain connect` to start a session."),
		)
		if status.Connecting {
			lines = append(lines, s.pending.Render("connection pending…"))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderConnection(session, opts, s)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConnection(session domain.Session, opts RenderOptions, s styles) string {
	heading := []string{s.connected.Render("● connected")}
	if session.IsDemoMode() {
		heading = append(heading, " ", s.demoBadge.Render("[demo]"))
	}
	if session.Role() == domain.RoleAdmin {
		heading = append(heading, " ", s.adminBadge.Render("[admin]"))
	}

	address := session.Address()
	if opts.ShortAddress {
		address = shortenAddress(address)
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, heading...),
		field(s, "mode", s.value.Render(string(session.Mode()))),
		field(s, "role", s.value.Render(string(session.Role()))),
		field(s, "address", s.address.Render(address)),
		field(s, "balance", s.balance.Render(formatBalance(session.Balance()))),
		field(s, "chain", s.value.Render(chainLabel(session.ChainID()))),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func field(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(fmt.Sprintf("%-8s", key+":")), " ", value)
}

func chainLabel(chainID int64) string {
	if chainID == domain.DemoChainID {
		return fmt.Sprintf("%d (Avalanche Fuji)", chainID)
	}

	return fmt.Sprintf("%d", chainID)
}

// formatBalance leaves unparsable balances as-is since the store stores them verbatim.
func formatBalance(balance string) string {
	if !domain.ValidBalance(balance) {
		return balance
	}

	return balance + " " + balanceSymbol
}

func shortenAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	if len(trimmed) <= 12 {
		return trimmed
	}

	return trimmed[:6] + "…" + trimmed[len(trimmed)-4:]
}
