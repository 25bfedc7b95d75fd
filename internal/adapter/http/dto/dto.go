package dto

// ---- Sign-in ----

// ChallengeRequest asks for a sign-in message for an address.
type ChallengeRequest struct {
	Address string `json:"address" binding:"required,eth_addr"`
}

// ChallengeResponse carries the message the wallet must personal-sign.
type ChallengeResponse struct {
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// LoginRequest is the signed challenge.
type LoginRequest struct {
	Address   string `json:"address" binding:"required,eth_addr"`
	Signature string `json:"signature" binding:"required,eth_sig"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ---- Token ----

// TokenResponse describes the deployed token.
type TokenResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"total_supply"` // base units
	Deployer    string `json:"deployer"`
	DeployedAt  string `json:"deployed_at"`
}

// BalanceResponse is the answer of balanceOf.
type BalanceResponse struct {
	Address   string `json:"address"`
	Balance   string `json:"balance"` // base units
	Formatted string `json:"formatted"`
}

// AllowanceResponse is the answer of allowance.
type AllowanceResponse struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

// TransferRequest moves tokens from the caller. Amount is in base units.
type TransferRequest struct {
	To     string `json:"to" binding:"required,eth_addr"`
	Amount string `json:"amount" binding:"required,amount"`
}

// TransferFromRequest moves tokens on behalf of From using an allowance.
type TransferFromRequest struct {
	From   string `json:"from" binding:"required,eth_addr"`
	To     string `json:"to" binding:"required,eth_addr"`
	Amount string `json:"amount" binding:"required,amount"`
}

// ApproveRequest sets the allowance of Spender over the caller's tokens.
type ApproveRequest struct {
	Spender string `json:"spender" binding:"required,eth_addr"`
	Amount  string `json:"amount" binding:"required,amount"`
}

// TaxLineResponse is the share of a transfer credited to one recipient.
type TaxLineResponse struct {
	Identifier uint32 `json:"identifier"`
	Recipient  string `json:"recipient"`
	Percentage uint8  `json:"percentage"`
	Amount     string `json:"amount"`
}

// TransferResponse is a settled transfer.
type TransferResponse struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	Spender   *string           `json:"spender,omitempty"`
	Amount    string            `json:"amount"`
	NetAmount string            `json:"net_amount"`
	TaxTotal  string            `json:"tax_total"`
	Taxed     bool              `json:"taxed"`
	TaxLines  []TaxLineResponse `json:"tax_lines"`
	CreatedAt string            `json:"created_at"`
}

// ---- Roles ----

// RoleAccountRequest names the account a role is granted to or revoked from.
type RoleAccountRequest struct {
	Account string `json:"account" binding:"required,eth_addr"`
}

// RoleResponse is one known role.
type RoleResponse struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	Admin string `json:"admin"`
}

// HasRoleResponse is the answer of hasRole.
type HasRoleResponse struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	HasRole bool   `json:"has_role"`
}

// RoleMembersResponse lists the holders of a role.
type RoleMembersResponse struct {
	Role    string   `json:"role"`
	Members []string `json:"members"`
}

// ---- Fee exclusion ----

// ExclusionRequest adds an address to the fee-exclusion set.
type ExclusionRequest struct {
	Address string `json:"address" binding:"required,eth_addr"`
}

// ExclusionResponse is the answer of excludedFromFee.
type ExclusionResponse struct {
	Address  string `json:"address"`
	Excluded bool   `json:"excluded"`
}

// ---- Tax registry ----

// AddTaxRequest appends a tax entry. Percentage is a pointer so 0 passes
// the required check.
type AddTaxRequest struct {
	Percentage *uint8 `json:"percentage" binding:"required"`
	Recipient  string `json:"recipient" binding:"required,eth_addr"`
}

// RemoveTaxRequest names the recipient that must hold the entry.
type RemoveTaxRequest struct {
	Recipient string `json:"recipient" binding:"required,eth_addr"`
}

// SetTaxValueRequest changes the percentage of an entry.
type SetTaxValueRequest struct {
	Recipient  string `json:"recipient" binding:"required,eth_addr"`
	Percentage *uint8 `json:"percentage" binding:"required"`
}

// SetTaxRecipientRequest moves an entry to a new recipient.
type SetTaxRecipientRequest struct {
	OldRecipient string `json:"old_recipient" binding:"required,eth_addr"`
	NewRecipient string `json:"new_recipient" binding:"required,eth_addr"`
}

// TaxEntryResponse is one live tax entry.
type TaxEntryResponse struct {
	Identifier uint32 `json:"identifier"`
	Percentage uint8  `json:"percentage"`
	Recipient  string `json:"recipient"`
}

// LastTaxResponse is the answer of getLastTaxIdentifier.
type LastTaxResponse struct {
	Identifier uint32 `json:"identifier"`
	Count      int    `json:"count"`
	Empty      bool   `json:"empty"`
}

// TaxStatsResponse aggregates the transfer history.
type TaxStatsResponse struct {
	TransferCount  int64  `json:"transfer_count"`
	TaxedCount     int64  `json:"taxed_count"`
	TotalVolume    string `json:"total_volume"`
	TotalCollected string `json:"total_collected"`
}
