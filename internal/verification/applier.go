package verification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/providers/ethereum"
)

// Action is a verification contract call
type Action string

const (
	ActionVerify         Action = "verificateAddress"
	ActionUnverify       Action = "unverifyAddress"
	ActionVerifyInversor Action = "verificateInversor"
)

// Change is one call needed to bring the contract in line with the list
type Change struct {
	Action  Action
	Address string
	// TxHash is empty for a dry run
	TxHash string
}

// Result summarizes an Apply run
type Result struct {
	Changes   []Change
	Unchanged int
}

// Applier brings the on-chain verification state in line with a List.
// Every address is checked before a transaction is sent, so applying the same
// list twice sends nothing the second time.
type Applier struct {
	contract ethereum.VerificationContract
	dryRun   bool
}

// NewApplier creates an applier. With dryRun set no transaction is sent.
func NewApplier(contract ethereum.VerificationContract, dryRun bool) *Applier {
	return &Applier{contract: contract, dryRun: dryRun}
}

// Plan returns the calls needed to apply the list and the number of addresses already in the desired state
func (a *Applier) Plan(ctx context.Context, list *List) ([]Change, int, error) {
	var changes []Change
	unchanged := 0

	check := func(addresses []string, want bool, action Action, status func(context.Context, string) (bool, error)) error {
		for _, addr := range addresses {
			current, err := status(ctx, addr)
			if err != nil {
				return fmt.Errorf("failed to read status of %s: %w", addr, err)
			}
			if current == want {
				unchanged++
				continue
			}
			changes = append(changes, Change{Action: action, Address: addr})
		}
		return nil
	}

	if err := check(list.Verified, true, ActionVerify, a.contract.IsVerified); err != nil {
		return nil, 0, err
	}
	if err := check(list.Unverified, false, ActionUnverify, a.contract.IsVerified); err != nil {
		return nil, 0, err
	}
	if err := check(list.Inversors, true, ActionVerifyInversor, a.contract.IsInversor); err != nil {
		return nil, 0, err
	}

	return changes, unchanged, nil
}

// Apply sends the planned calls one at a time and waits for each receipt.
// It stops at the first failure; the returned result holds the calls that were mined.
func (a *Applier) Apply(ctx context.Context, list *List) (Result, error) {
	changes, unchanged, err := a.Plan(ctx, list)
	if err != nil {
		return Result{}, err
	}

	result := Result{Unchanged: unchanged}
	if a.dryRun {
		for _, change := range changes {
			logger.InfoCtx(ctx, "Dry run: would send verification call",
				zap.String("action", string(change.Action)),
				zap.String("address", change.Address),
			)
		}
		result.Changes = changes
		return result, nil
	}

	for _, change := range changes {
		txHash, err := a.send(ctx, change)
		if err != nil {
			return result, fmt.Errorf("failed to send %s for %s: %w", change.Action, change.Address, err)
		}

		if err := a.contract.WaitForReceipt(ctx, txHash); err != nil {
			return result, fmt.Errorf("%s for %s was not mined: %w", change.Action, change.Address, err)
		}

		change.TxHash = txHash
		result.Changes = append(result.Changes, change)
		logger.InfoCtx(ctx, "Verification call mined",
			zap.String("action", string(change.Action)),
			zap.String("address", change.Address),
			zap.String("txHash", txHash),
		)
	}

	return result, nil
}

func (a *Applier) send(ctx context.Context, change Change) (string, error) {
	switch change.Action {
	case ActionVerify:
		return a.contract.VerifyAddress(ctx, change.Address)
	case ActionUnverify:
		return a.contract.UnverifyAddress(ctx, change.Address)
	case ActionVerifyInversor:
		return a.contract.VerifyInversor(ctx, change.Address)
	default:
		return "", fmt.Errorf("unknown action: %s", change.Action)
	}
}
