package main

import (
	"fmt"
	"os"

	"github.com/andreyxaxa/GreenPass-Analyzer/internal/entity"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/hcertgen"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var (
		out     string
		size    int
		flat    bool
		subject hcertgen.Subject
		dose    hcertgen.Vaccination
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate an unsigned demo Green Pass QR code",
		Long: `sample writes an unsigned Green Pass QR code as PNG and prints its
HC1 payload. The signature is zero-filled, so the output is for testing only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, png, err := hcertgen.Build(subject, dose, !flat, size)
			if err != nil {
				return err
			}

			if out != "" {
				if err = os.WriteFile(out, png, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), payload)

			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "PNG output path")
	f.IntVar(&size, "size", hcertgen.DefaultQRSize, "QR image size in pixels")
	f.BoolVar(&flat, "flat", false, "put the certificate directly under claim -260")
	f.StringVar(&subject.GivenName, "given-name", "ANNA", "standardised given name")
	f.StringVar(&subject.FamilyName, "family-name", "DOE", "standardised family name")
	f.StringVar(&subject.DateOfBirth, "dob", "1990-01-01", "date of birth")
	f.StringVar(&dose.Timestamp, "dt", "2021-06-15T00:00:00", "date of the last dose")
	f.IntVar(&dose.DoseNumber, "dn", 1, "dose number")
	f.IntVar(&dose.TotalDoses, "sd", 2, "doses in the series")
	f.StringVar(&dose.Product, "mp", entity.VaccinePfizer, "medicinal product code")

	return cmd
}
