package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a swap against the given reserves without a running server",
		RunE:  runQuote,
	}
	cmd.Flags().Uint64("amount-in", 0, "input amount")
	cmd.Flags().Uint64("reserve-in", 0, "reserve of the input asset")
	cmd.Flags().Uint64("reserve-out", 0, "reserve of the output asset")
	cmd.Flags().Uint64("fee-num", amm.StandardFee.Numerator, "fee numerator")
	cmd.Flags().Uint64("fee-den", amm.StandardFee.Denominator, "fee denominator")
	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	amountIn, _ := flags.GetUint64("amount-in")
	reserveIn, _ := flags.GetUint64("reserve-in")
	reserveOut, _ := flags.GetUint64("reserve-out")
	feeNum, _ := flags.GetUint64("fee-num")
	feeDen, _ := flags.GetUint64("fee-den")

	out, fee, err := amm.ComputeSwap(amountIn, reserveIn, reserveOut, feeNum, feeDen)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "amount_out=%d fee=%d\n", out, fee)
	return err
}
