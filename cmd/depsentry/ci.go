package depsentry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// ciTemplates maps a provider to the pipeline file it uses and its content.
// Every template builds depsentry and fails the job on exit code 2.
var ciTemplates = map[string]struct {
	path    string
	content string
}{
	"github": {".github/workflows/depsentry.yml", `name: depsentry
on: [push, pull_request]
jobs:
  audit:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: '1.25'
      - run: go install github.com/redactyl/depsentry@latest
      - run: depsentry scan --sarif > depsentry.sarif
      - if: always()
        uses: github/codeql-action/upload-sarif@v3
        with:
          sarif_file: depsentry.sarif
`},
	"gitlab": {".gitlab-ci.yml", `stages: [audit]
depsentry:
  stage: audit
  image: golang:1.25
  script:
    - go install github.com/redactyl/depsentry@latest
    - depsentry scan --json > depsentry-findings.json || (cat depsentry-findings.json; exit 2)
  artifacts:
    when: always
    paths:
      - depsentry-findings.json
`},
	"bitbucket": {"bitbucket-pipelines.yml", `pipelines:
  default:
    - step:
        name: depsentry audit
        image: golang:1.25
        caches:
          - go
        script:
          - go install github.com/redactyl/depsentry@latest
          - depsentry scan --json > depsentry-findings.json || (cat depsentry-findings.json; exit 2)
        artifacts:
          - depsentry-findings.json
`},
	"azure": {"azure-pipelines.yml", `trigger:
- main

pool:
  vmImage: 'ubuntu-latest'

steps:
- task: GoTool@0
  inputs:
    version: '1.25.x'
- script: |
    go install github.com/redactyl/depsentry@latest
    $(go env GOPATH)/bin/depsentry scan --json > depsentry-findings.json || (cat depsentry-findings.json; exit 2)
  displayName: 'depsentry audit'
- publish: depsentry-findings.json
  artifact: depsentry-findings
  condition: succeededOrFailed()
`},
}

func init() {
	ci := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}
	rootCmd.AddCommand(ci)

	var provider string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline template for your provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, ok := ciTemplates[provider]
			if !ok {
				return fmt.Errorf("unknown --provider %q. Supported: github, gitlab, bitbucket, azure", provider)
			}
			if err := os.MkdirAll(filepath.Dir(tpl.path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(tpl.path, []byte(tpl.content), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", tpl.path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "", "CI provider: github | gitlab | bitbucket | azure")
	if err := initCmd.MarkFlagRequired("provider"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not mark --provider as required:", err)
	}
	ci.AddCommand(initCmd)
}
