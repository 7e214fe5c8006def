package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/parallax-network/parallax/x/session/types"
)

// GetQueryCmd returns the cli query commands for the session module
func GetQueryCmd() *cobra.Command {
	sessionQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the session module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	sessionQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQuerySession(),
		GetCmdQuerySessions(),
		GetCmdQueryDepositBalance(),
		GetCmdQueryEarnings(),
		GetCmdQueryProofHistory(),
	)

	return sessionQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current session module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySession returns the command to query one session by id
func GetCmdQuerySession() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session [session-id]",
		Short: "Query session details by id",
		Long: `Query one session record, including its status, deposit, proven work
and settlement deadlines.

Example:
  $ plxd query session session 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Session(context.Background(), &types.QuerySessionRequest{SessionId: sessionID})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySessions returns the command to list sessions
func GetCmdQuerySessions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions [status]",
		Short: "List sessions, optionally filtered by status",
		Long: `List all sessions in id order. An optional status name filters the list.

Example:
  $ plxd query session sessions active`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			req := &types.QuerySessionsRequest{}
			if len(args) == 1 {
				req.Status = args[0]
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Sessions(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryDepositBalance returns the command to query a holder's deposit cells
func GetCmdQueryDepositBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-balance [holder]",
		Short: "Query the uncommitted deposit balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.DepositBalance(context.Background(), &types.QueryDepositBalanceRequest{Holder: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryEarnings returns the command to query a beneficiary's earnings cells
func GetCmdQueryEarnings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earnings [beneficiary]",
		Short: "Query the accumulated earnings of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Earnings(context.Background(), &types.QueryEarningsRequest{Beneficiary: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProofHistory returns the command to query a session's proof records
func GetCmdQueryProofHistory() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proof-history [session-id]",
		Short: "Query the ordered proof records of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			sessionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ProofHistory(context.Background(), &types.QueryProofHistoryRequest{SessionId: sessionID})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
