package cli

import (
	"encoding/json"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"playchain/x/gamehub/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the gamehub module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(getProfileCmd())
	cmd.AddCommand(getBalanceCmd())
	cmd.AddCommand(getParamsCmd())
	return cmd
}

func getProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [player]",
		Short: "Shows the profile for a player address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			key := append(types.ProfileKeyPrefix.Bytes(), []byte(args[0])...)
			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return clientCtx.PrintString("profile not found\n")
			}

			// Stored as JSON (collections codec).
			var profile types.PlayerProfile
			if err := json.Unmarshal(bz, &profile); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(profile)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [player]",
		Short: "Shows the reward-token balance for a player address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			key := append(types.BalanceKeyPrefix.Bytes(), []byte(args[0])...)
			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				// Absent balances read as zero.
				return clientCtx.PrintString("0\n")
			}

			var balance math.Int
			if err := balance.Unmarshal(bz); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			return clientCtx.PrintString(balance.String() + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
			if err != nil || len(bz) == 0 {
				// If unset or unavailable, fall back to defaults.
				out, _ := json.Marshal(types.DefaultParams())
				return clientCtx.PrintString(string(out) + "\n")
			}

			var p types.Params
			if err := json.Unmarshal(bz, &p); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(p)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
