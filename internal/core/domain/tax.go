package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	ErrTaxIdentifierNotFound = errors.New("tax identifier does not exist")
	ErrTaxInvalidRecipient   = errors.New("invalid tax recipient")
	ErrTaxInvalidPercentage  = errors.New("tax percentage must be between 0 and 100")
	ErrTaxCapExceeded        = errors.New("total tax percentage exceeds limit")
)

// MaxPercentage is the largest percentage a single entry may carry.
const MaxPercentage uint8 = 100

// CompactionMode selects how identifiers are kept dense after a removal.
type CompactionMode string

const (
	// CompactSwapLast moves the entry with the highest identifier into the
	// removed slot.
	CompactSwapLast CompactionMode = "swap_last"
	// CompactShift moves every entry above the removed slot down by one,
	// preserving relative order.
	CompactShift CompactionMode = "shift"
)

// Valid reports whether m is a known mode.
func (m CompactionMode) Valid() bool {
	return m == CompactSwapLast || m == CompactShift
}

// TaxPolicy holds registry-wide limits.
type TaxPolicy struct {
	MaxTotalPercentage uint8
	Compaction         CompactionMode
}

// DefaultTaxPolicy caps the total at 100% and compacts by swapping.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{MaxTotalPercentage: MaxPercentage, Compaction: CompactSwapLast}
}

// TaxEntry is one live (percentage, recipient) pair.
type TaxEntry struct {
	Identifier uint32         `json:"identifier"`
	Percentage uint8          `json:"percentage"`
	Recipient  common.Address `json:"recipient"`
}

// Renumbering records an entry that changed identifier during compaction.
type Renumbering struct {
	From uint32
	To   uint32
}

// Removal describes the outcome of Remove so a store can replay it.
type Removal struct {
	Removed TaxEntry
	// Moves are listed in the order they must be applied.
	Moves []Renumbering
}

// TaxRegistry is the ordered, densely numbered list of tax entries.
// It is a plain value: load it from storage, mutate it, persist the diff.
type TaxRegistry struct {
	entries []TaxEntry
	policy  TaxPolicy
}

// NewTaxRegistry builds a registry from stored entries. Entries are sorted by
// identifier and must form the range [0, n-1].
func NewTaxRegistry(entries []TaxEntry, policy TaxPolicy) (*TaxRegistry, error) {
	if !policy.Compaction.Valid() {
		return nil, fmt.Errorf("tax registry: unknown compaction mode %q", policy.Compaction)
	}
	if policy.MaxTotalPercentage > MaxPercentage {
		return nil, fmt.Errorf("tax registry: max total %d above %d", policy.MaxTotalPercentage, MaxPercentage)
	}

	sorted := make([]TaxEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Identifier < sorted[j].Identifier })

	for i, e := range sorted {
		if e.Identifier != uint32(i) {
			return nil, fmt.Errorf("tax registry: identifiers not dense at %d (found %d)", i, e.Identifier)
		}
	}
	return &TaxRegistry{entries: sorted, policy: policy}, nil
}

// Count returns the number of live entries.
func (r *TaxRegistry) Count() int {
	return len(r.entries)
}

// IsEmpty reports whether no entry is live.
func (r *TaxRegistry) IsEmpty() bool {
	return len(r.entries) == 0
}

// LastIdentifier returns count-1, or 0 with empty=true when there are no entries.
func (r *TaxRegistry) LastIdentifier() (id uint32, empty bool) {
	if len(r.entries) == 0 {
		return 0, true
	}
	return uint32(len(r.entries) - 1), false
}

// Entries returns a copy of the live entries in identifier order.
func (r *TaxRegistry) Entries() []TaxEntry {
	out := make([]TaxEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Entry returns the entry at id.
func (r *TaxRegistry) Entry(id uint32) (TaxEntry, error) {
	if int64(id) >= int64(len(r.entries)) {
		return TaxEntry{}, ErrTaxIdentifierNotFound
	}
	return r.entries[id], nil
}

// TotalPercentage sums the live percentages.
func (r *TaxRegistry) TotalPercentage() uint {
	var total uint
	for _, e := range r.entries {
		total += uint(e.Percentage)
	}
	return total
}

// Add appends an entry with identifier = Count().
func (r *TaxRegistry) Add(percentage uint8, recipient common.Address) (TaxEntry, error) {
	if IsZero(recipient) {
		return TaxEntry{}, ErrTaxInvalidRecipient
	}
	if percentage > MaxPercentage {
		return TaxEntry{}, ErrTaxInvalidPercentage
	}
	if r.TotalPercentage()+uint(percentage) > uint(r.policy.MaxTotalPercentage) {
		return TaxEntry{}, ErrTaxCapExceeded
	}

	e := TaxEntry{
		Identifier: uint32(len(r.entries)),
		Percentage: percentage,
		Recipient:  recipient,
	}
	r.entries = append(r.entries, e)
	return e, nil
}

// lookup checks that id is live and held by recipient, in that order.
func (r *TaxRegistry) lookup(id uint32, recipient common.Address) (int, error) {
	if int64(id) >= int64(len(r.entries)) {
		return 0, ErrTaxIdentifierNotFound
	}
	if r.entries[id].Recipient != recipient {
		return 0, ErrTaxInvalidRecipient
	}
	return int(id), nil
}

// Remove deletes the entry at id held by recipient and compacts identifiers.
func (r *TaxRegistry) Remove(id uint32, recipient common.Address) (Removal, error) {
	idx, err := r.lookup(id, recipient)
	if err != nil {
		return Removal{}, err
	}

	removal := Removal{Removed: r.entries[idx]}
	last := len(r.entries) - 1

	switch r.policy.Compaction {
	case CompactShift:
		for i := idx + 1; i <= last; i++ {
			removal.Moves = append(removal.Moves, Renumbering{From: uint32(i), To: uint32(i - 1)})
		}
		r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
		for i := idx; i < len(r.entries); i++ {
			r.entries[i].Identifier = uint32(i)
		}
	default:
		if idx != last {
			removal.Moves = append(removal.Moves, Renumbering{From: uint32(last), To: uint32(idx)})
			r.entries[idx] = r.entries[last]
			r.entries[idx].Identifier = uint32(idx)
		}
		r.entries = r.entries[:last]
	}
	return removal, nil
}

// SetPercentage replaces the percentage of the entry at id held by recipient.
func (r *TaxRegistry) SetPercentage(id uint32, recipient common.Address, percentage uint8) (TaxEntry, error) {
	idx, err := r.lookup(id, recipient)
	if err != nil {
		return TaxEntry{}, err
	}
	if percentage > MaxPercentage {
		return TaxEntry{}, ErrTaxInvalidPercentage
	}
	old := r.entries[idx].Percentage
	total := r.TotalPercentage() - uint(old) + uint(percentage)
	if percentage > old && total > uint(r.policy.MaxTotalPercentage) {
		return TaxEntry{}, ErrTaxCapExceeded
	}

	r.entries[idx].Percentage = percentage
	return r.entries[idx], nil
}

// SetRecipient replaces the recipient of the entry at id held by oldRecipient.
func (r *TaxRegistry) SetRecipient(id uint32, oldRecipient, newRecipient common.Address) (TaxEntry, error) {
	idx, err := r.lookup(id, oldRecipient)
	if err != nil {
		return TaxEntry{}, err
	}
	if IsZero(newRecipient) {
		return TaxEntry{}, ErrTaxInvalidRecipient
	}

	r.entries[idx].Recipient = newRecipient
	return r.entries[idx], nil
}

// SplitLine is the share of a transfer owed to one tax entry.
type SplitLine struct {
	Identifier uint32
	Recipient  common.Address
	Percentage uint8
	Amount     *uint256.Int
}

// SplitResult is the full distribution of one transfer amount.
type SplitResult struct {
	Net      *uint256.Int
	TotalTax *uint256.Int
	Taxed    bool
	Lines    []SplitLine
}

// Split distributes amount across the live entries. An exempt transfer
// (sender or receiver excluded from fee) sends everything to the receiver.
// Each share is amount*percentage/100 truncated; the receiver gets the rest.
func (r *TaxRegistry) Split(amount *uint256.Int, exempt bool) SplitResult {
	res := SplitResult{
		Net:      new(uint256.Int).Set(amount),
		TotalTax: new(uint256.Int),
	}
	if exempt || len(r.entries) == 0 {
		return res
	}

	res.Taxed = true
	hundred := uint256.NewInt(uint64(MaxPercentage))
	for _, e := range r.entries {
		share, _ := new(uint256.Int).MulDivOverflow(amount, uint256.NewInt(uint64(e.Percentage)), hundred)
		res.Lines = append(res.Lines, SplitLine{
			Identifier: e.Identifier,
			Recipient:  e.Recipient,
			Percentage: e.Percentage,
			Amount:     share,
		})
		res.TotalTax.Add(res.TotalTax, share)
	}

	if res.TotalTax.Gt(amount) {
		res.Net.Clear()
	} else {
		res.Net.Sub(amount, res.TotalTax)
	}
	return res
}
