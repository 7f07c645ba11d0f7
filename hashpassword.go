// path: hashpassword.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kausheya2006/RaiseUrVoice/operator"
)

func runHashPassword(cmd *cobra.Command, args []string) error {
	h, err := operator.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), h)
	return nil
}
