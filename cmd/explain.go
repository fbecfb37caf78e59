package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnhub/internal/assistant"
)

var explainCmd = &cobra.Command{
	Use:   "explain [text]",
	Short: "Ask the learning assistant about a passage",
	Long:  `Prints the explanation the learning assistant gives for the text, with its follow-up questions. With --follow-up, prints the answer to that follow-up instead.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().String("follow-up", "", "answer this follow-up label for the text")
	explainCmd.Flags().Bool("json", false, "output the response as JSON")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(args[0])
	if text == "" {
		return fmt.Errorf("text must not be blank")
	}
	label, _ := cmd.Flags().GetString("follow-up")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if label != "" {
		answer := assistant.FollowUp(label, text)
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(map[string]string{"label": label, "answer": answer})
		}
		fmt.Println(answer)
		return nil
	}

	resp := assistant.Respond(text)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Println(resp.Explanation)
	fmt.Println()
	fmt.Println("Follow-up questions:")
	for _, f := range resp.FollowUps {
		fmt.Printf("  - %s\n", f)
	}
	return nil
}
