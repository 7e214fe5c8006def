package cli

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parallax-network/parallax/x/session/types"
)

// GetTxCmd returns the transaction commands for the session module
func GetTxCmd() *cobra.Command {
	sessionTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Session transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	sessionTxCmd.AddCommand(
		CmdDeposit(),
		CmdWithdrawDeposit(),
		CmdCreateSession(),
		CmdSubmitProof(),
		CmdClaim(),
		CmdMarkReady(),
		CmdFinalize(),
		CmdTriggerTimeout(),
		CmdClaimAbandoned(),
		CmdCancelSession(),
		CmdWithdrawEarnings(),
	)

	return sessionTxCmd
}

// CmdDeposit returns a CLI command handler for funding the deposit ledger
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Move coins into the session deposit ledger",
		Long: `Transfer coins into module custody and credit the signer's deposit ledger.

Example:
  $ plxd tx session deposit 1000000uplx --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			msg := &types.MsgDeposit{
				Depositor: clientCtx.GetFromAddress().String(),
				Amount:    amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawDeposit returns a CLI command handler for withdrawing uncommitted deposit balance
func CmdWithdrawDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-deposit [amount]",
		Short: "Withdraw uncommitted balance from the deposit ledger",
		Long: `Release coins from the signer's deposit ledger back to their account.
Only balance not committed to a session can be withdrawn.

Example:
  $ plxd tx session withdraw-deposit 500000uplx --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			msg := &types.MsgWithdrawDeposit{
				Depositor: clientCtx.GetFromAddress().String(),
				Amount:    amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateSession returns a CLI command handler for opening a metered session
func CmdCreateSession() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-session [host] [deposit] [unit-price] [max-duration-seconds]",
		Short: "Open a metered session against a host",
		Long: `Open a session, committing the deposit from the signer's ledger balance.
The unit price must meet the host's advertised minimum.

Example:
  $ plxd tx session create-session plx1host... 1000uplx 10 3600 \
    --capability gpu-a100 \
    --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			deposit, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid deposit: %w", err)
			}

			unitPrice, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid unit price %q", args[2])
			}

			maxDuration, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid max duration: %w", err)
			}

			capability, err := cmd.Flags().GetString(FlagCapability)
			if err != nil {
				return err
			}

			proofInterval, err := cmd.Flags().GetUint64(FlagProofInterval)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateSession{
				Renter:               clientCtx.GetFromAddress().String(),
				Host:                 args[0],
				Deposit:              deposit,
				UnitPrice:            unitPrice,
				Capability:           capability,
				MaxDurationSeconds:   maxDuration,
				ProofIntervalSeconds: proofInterval,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagCapability, "", "Required host capability tag")
	cmd.Flags().Uint64(FlagProofInterval, 0, "Expected seconds between proofs (informational)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitProof returns a CLI command handler for submitting a work proof
func CmdSubmitProof() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-proof [session-id] [work-units] [digest]",
		Short: "Submit a verified work proof for a session",
		Long: `Submit proof material advancing the session's proven work counter.
The digest must be globally unique across all sessions.

Example:
  $ plxd tx session submit-proof 7 25 a1b2c3... \
    --material "cHJvb2YtYnl0ZXM=" \
    --proof-cid bafyproof \
    --from hostkey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			workUnits, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid work units: %w", err)
			}

			materialStr, err := cmd.Flags().GetString(FlagMaterial)
			if err != nil {
				return err
			}
			var material []byte
			if materialStr != "" {
				material, err = base64.StdEncoding.DecodeString(materialStr)
				if err != nil {
					return fmt.Errorf("invalid material (want base64): %w", err)
				}
			}

			proofCid, err := cmd.Flags().GetString(FlagProofCid)
			if err != nil {
				return err
			}

			deltaCid, err := cmd.Flags().GetString(FlagDeltaCid)
			if err != nil {
				return err
			}

			msg := &types.MsgSubmitProof{
				Host:      clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
				WorkUnits: workUnits,
				Digest:    args[2],
				Material:  material,
				ProofCid:  proofCid,
				DeltaCid:  deltaCid,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMaterial, "", "Base64-encoded proof material")
	cmd.Flags().String(FlagProofCid, "", "Content identifier of the full proof artifact")
	cmd.Flags().String(FlagDeltaCid, "", "Content identifier of the state delta artifact")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaim returns a CLI command handler for the host settlement path
func CmdClaim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim [session-id]",
		Short: "Settle a session against its accumulated proofs (host)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			msg := &types.MsgClaim{
				Host:      clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMarkReady returns a CLI command handler for the host half of cooperative completion
func CmdMarkReady() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark-ready [session-id]",
		Short: "Mark a session ready to finalize (host)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			msg := &types.MsgMarkReady{
				Host:      clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFinalize returns a CLI command handler for the renter half of cooperative completion
func CmdFinalize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize [session-id]",
		Short: "Finalize a session the host marked ready (renter)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			msg := &types.MsgFinalize{
				Renter:    clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTriggerTimeout returns a CLI command handler for settling an expired session
func CmdTriggerTimeout() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trigger-timeout [session-id]",
		Short: "Settle a session whose max duration has elapsed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			msg := &types.MsgTriggerTimeout{
				Caller:    clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimAbandoned returns a CLI command handler for settling an abandoned session
func CmdClaimAbandoned() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-abandoned [session-id]",
		Short: "Settle a session whose counterparty has gone silent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			msg := &types.MsgClaimAbandoned{
				Caller:    clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelSession returns a CLI command handler for cancelling a workless session
func CmdCancelSession() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-session [session-id]",
		Short: "Cancel a session before any work has been proven (renter)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}

			msg := &types.MsgCancelSession{
				Renter:    clientCtx.GetFromAddress().String(),
				SessionId: sessionID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawEarnings returns a CLI command handler for withdrawing accumulated earnings
func CmdWithdrawEarnings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-earnings [denom]...",
		Short: "Withdraw accumulated earnings to the signer's account",
		Long: `Withdraw the signer's accumulated earnings. Without arguments every
non-zero denom is withdrawn.

Example:
  $ plxd tx session withdraw-earnings uplx --from hostkey`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawEarnings{
				Beneficiary: clientCtx.GetFromAddress().String(),
				Denoms:      args,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
