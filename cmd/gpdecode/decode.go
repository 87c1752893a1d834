package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/andreyxaxa/GreenPass-Analyzer/internal/entity"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure/barcode"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/usecase/greenpass"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/types/errs"
	"github.com/spf13/cobra"
)

type decodeOutput struct {
	*entity.Certificate

	StandardExpiration          *time.Time `json:"standardExpiration,omitempty"`
	ExpirationIfPatientGotCovid *time.Time `json:"expirationIfPatientGotCovid,omitempty"`
}

func newDecodeCmd() *cobra.Command {
	var (
		text        bool
		expirations bool
	)

	cmd := &cobra.Command{
		Use:   "decode <image>",
		Short: "Print the vaccination record of a Green Pass",
		Example: `  gpdecode decode pass.png
  gpdecode decode --text 'HC1:6BF...'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := greenpass.New(barcode.New())

			var (
				cert *entity.Certificate
				err  error
			)

			if text {
				cert, err = uc.AnalyzePayload(cmd.Context(), []byte(args[0]))
			} else {
				var data []byte
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				cert, err = uc.Analyze(cmd.Context(), data)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", errs.Kind(err), err)
			}

			out := decodeOutput{Certificate: cert}
			if expirations {
				out.StandardExpiration = &cert.StandardExpiration
				out.ExpirationIfPatientGotCovid = &cert.ExpirationIfPatientGotCovid
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVarP(&text, "text", "t", false, "treat the argument as a raw HC1: payload instead of an image path")
	cmd.Flags().BoolVarP(&expirations, "expirations", "e", false, "include derived expiration dates")

	return cmd
}
