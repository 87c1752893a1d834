package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gpdecode",
		Short: "Decode EU Digital COVID Certificate QR codes",
		Long: `gpdecode reads the QR code of an EU Digital COVID Certificate
("Green Pass") and prints the vaccination record as JSON.

The certificate signature is not verified.`,
		SilenceUsage: true,
	}

	root.AddCommand(newDecodeCmd(), newSampleCmd())

	return root
}
