// policyctl 정책 코퍼스를 대상으로 추천과 캐시 키를 확인하는 운영 도구
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "policyctl",
		Short:         "Youth policy recommendation toolkit",
		Long:          "policyctl loads the policy corpus the same way the server does and runs recommendations or fingerprint lookups from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Path to config.yaml (defaults are used when empty)")
	root.PersistentFlags().String("corpus", "", "Path to normalized policy JSON (overrides corpus.path)")

	root.AddCommand(newRecommendCmd(), newFingerprintCmd(), newValidateCmd())
	return root
}

func main() {
	// .env 파일이 없으면 시스템 환경 변수 사용
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
