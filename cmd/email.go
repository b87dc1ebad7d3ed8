/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var emailDryRun bool

var emailCmd = &cobra.Command{
	Use:   "email <address> [from] [to (optional)]",
	Short: "Emails a listening summary for a period",
	Long: `Generates the same report as the stats command and sends it by email.
Dates are given as YYYY, YYYY-MM, or YYYY-MM-DD.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		err := sendStatsEmail(viper.GetString("database"), args[0], args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)
	emailCmd.Flags().BoolVar(&emailDryRun, "dry_run", false, "Print the report instead of sending it")
}

func sendStatsEmail(dbPath string, toAddress string, dateArgs []string) error {
	var body strings.Builder
	if err := printStats(&body, dbPath, dateArgs); err != nil {
		return err
	}

	if emailDryRun {
		fmt.Printf("Would send to %s:\n\n%s", toAddress, body.String())
		return nil
	}

	fromAddress := viper.GetString("from")
	if fromAddress == "" {
		return fmt.Errorf("no from address configured")
	}

	from := mail.NewEmail("spotiquery", fromAddress)
	to := mail.NewEmail(toAddress, toAddress)
	subject := "Your listening report"
	message := mail.NewSingleEmail(from, subject, to, body.String(),
		"<pre>"+body.String()+"</pre>")
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))
	if _, err := client.Send(message); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	fmt.Printf("Sent report to %s\n", toAddress)

	return nil
}
