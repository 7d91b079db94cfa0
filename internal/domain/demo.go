package domain

// DemoChainID is the Avalanche Fuji test network. Every session lands on it.
const DemoChainID int64 = 43113

const (
	DemoUserAddress  = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	DemoAdminAddress = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

	DemoUserBalance  = "2.45"
	DemoAdminBalance = "125.50"
)

type demoAccount struct {
	address string
	balance string
}

var demoAccounts = map[Role]demoAccount{
	RoleUser:  {address: DemoUserAddress, balance: DemoUserBalance},
	RoleAdmin: {address: DemoAdminAddress, balance: DemoAdminBalance},
}

// DemoSession returns the fixed demo session for role.
func DemoSession(role Role) (Session, error) {
	account, ok := demoAccounts[role]
	if !ok {
		return Disconnected(), ErrUnknownRole
	}

	return NewConnected(ModeDemo, account.address, account.balance, role, DemoChainID)
}
