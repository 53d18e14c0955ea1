package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/docket/pkg/analyze"
	"github.com/coolbeans/docket/pkg/builder"
	"github.com/coolbeans/docket/pkg/content"
	"github.com/coolbeans/docket/pkg/lcvr"
	"github.com/coolbeans/docket/pkg/rules"
	"github.com/coolbeans/docket/pkg/types"
	"github.com/coolbeans/docket/pkg/watch"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "docket",
		Short: "DC District Court filing drafter and format validator",
		Long: `Docket checks federal court filings against the DC District's
formatting rules (LCvR 5.1, LCvR 7) and drafts filings that satisfy them.

It consumes extraction dumps (JSON) produced by a PDF or word-processor
text extractor and produces:
  - Format compliance reports (text, JSON, Markdown)
  - Court-ready filings in RTF and PDF
  - Reformatted versions of uploaded drafts
  - Live re-validation of filings as they change on disk`,
		Version: version,
	}

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(draftCmd())
	rootCmd.AddCommand(reformatCmd())
	rootCmd.AddCommand(typesCmd())
	rootCmd.AddCommand(judgesCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newChecker builds a checker, honoring a --spec override file.
func newChecker(specPath string) (*rules.Checker, error) {
	if specPath == "" {
		return rules.NewChecker(), nil
	}
	spec, err := lcvr.LoadFormatSpec(specPath)
	if err != nil {
		return nil, err
	}
	return rules.NewCheckerWithSpec(spec), nil
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a filing against DC District formatting rules",
		Long: `Validate an extracted filing against LCvR 5.1 and LCvR 7.

The source is an extraction dump: JSON with per-page text, and, when the
extractor supports it, font-attributed text spans.

Example:
  docket check --source motion.json
  docket check --source motion.json --type reply --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			docType, _ := cmd.Flags().GetString("type")
			specPath, _ := cmd.Flags().GetString("spec")
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			doc, err := types.LoadSourceDocument(source)
			if err != nil {
				return err
			}

			md, err := analyze.Analyze(doc)
			if err != nil {
				return fmt.Errorf("analyzing %s: %w", source, err)
			}

			in := analyze.BuildChecklist(md)
			if docType != "" {
				in.DocumentType = docType
			}

			checker, err := newChecker(specPath)
			if err != nil {
				return err
			}
			report := rules.NewReport(checker.Validate(in))

			var out []byte
			switch format {
			case "json":
				out, err = report.ToJSON()
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
			case "markdown", "md":
				out = []byte(report.ToMarkdown())
			case "text", "":
				out = []byte(report.String())
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}

			if output != "" {
				if err := os.WriteFile(output, out, 0644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Printf("Report written to %s\n", output)
				return nil
			}
			fmt.Println(string(out))

			if !report.Summary.IsCompliant {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "extraction dump to validate (JSON)")
	cmd.Flags().String("type", "", "document type override (motion, opposition, reply)")
	cmd.Flags().String("spec", "", "format spec YAML override")
	cmd.Flags().String("format", "text", "report format: text, json, markdown")
	cmd.Flags().String("output", "", "write the report to a file instead of stdout")
	return cmd
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract content and case information from a structural source",
		Long: `Extract paragraphs, case information, and body sections from a
paragraph-level extraction dump (JSON with style and run metadata).

Example:
  docket extract --source draft.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			doc, err := types.LoadStructuredDocument(source)
			if err != nil {
				return err
			}

			rec, err := content.NewExtractor().Extract(doc)
			if err != nil {
				return fmt.Errorf("extracting %s: %w", source, err)
			}

			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding content record: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().String("source", "", "structural extraction dump (JSON)")
	return cmd
}

func draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft a court-ready filing from a request file",
		Long: `Draft a filing from a YAML request: case information, attorney
details, section content, and optional lettered arguments.

Example:
  docket draft --request motion.yaml
  docket draft --request motion.yaml --format pdf --out filings/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			requestPath, _ := cmd.Flags().GetString("request")
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")

			if requestPath == "" {
				return fmt.Errorf("--request flag is required")
			}

			data, err := os.ReadFile(requestPath)
			if err != nil {
				return fmt.Errorf("reading request: %w", err)
			}
			var req builder.Request
			if err := yaml.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("parsing request YAML: %w", err)
			}
			req.Source = builder.SourceDrafted

			if err := req.ValidateForFiling(); err != nil {
				return err
			}

			return writeFiling(&req, format, outDir)
		},
	}

	cmd.Flags().String("request", "", "draft request file (YAML)")
	cmd.Flags().String("format", "rtf", "output format: rtf, pdf")
	cmd.Flags().String("out", ".", "output directory")
	return cmd
}

func reformatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reformat",
		Short: "Reformat an uploaded draft to DC District standards",
		Long: `Reformat a structural extraction dump into a court-ready filing:
content and case information are extracted from the source, then rebuilt with
the standard caption, section headings, and signature block.

Case or attorney details found in the source can be supplemented with a
request file; its non-empty fields win.

Example:
  docket reformat --source draft.json --type motion_to_dismiss
  docket reformat --source draft.json --request case.yaml --format pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			docType, _ := cmd.Flags().GetString("type")
			requestPath, _ := cmd.Flags().GetString("request")
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			doc, err := types.LoadStructuredDocument(source)
			if err != nil {
				return err
			}
			rec, err := content.NewExtractor().Extract(doc)
			if err != nil {
				return fmt.Errorf("extracting %s: %w", source, err)
			}

			req := builder.Request{
				Case:     rec.CaseInfo,
				Sections: rec.Sections,
				Source:   builder.SourceReformatted,
			}
			if requestPath != "" {
				data, err := os.ReadFile(requestPath)
				if err != nil {
					return fmt.Errorf("reading request: %w", err)
				}
				var overrides builder.Request
				if err := yaml.Unmarshal(data, &overrides); err != nil {
					return fmt.Errorf("parsing request YAML: %w", err)
				}
				mergeRequest(&req, &overrides)
			}

			if docType != "" {
				req.DocumentType = docType
			}
			if req.DocumentType == "" {
				req.DocumentType = inferDocumentTypeID(rec.CaseInfo.DocumentTitle)
			}

			return writeFiling(&req, format, outDir)
		},
	}

	cmd.Flags().String("source", "", "structural extraction dump (JSON)")
	cmd.Flags().String("type", "", "document type (see: docket types)")
	cmd.Flags().String("request", "", "case/attorney overrides (YAML)")
	cmd.Flags().String("format", "rtf", "output format: rtf, pdf")
	cmd.Flags().String("out", ".", "output directory")
	return cmd
}

// mergeRequest overlays non-empty override fields onto the extracted request.
func mergeRequest(req, overrides *builder.Request) {
	if overrides.DocumentType != "" {
		req.DocumentType = overrides.DocumentType
	}
	if overrides.Case.CaseNumber != "" {
		req.Case.CaseNumber = overrides.Case.CaseNumber
	}
	if overrides.Case.Plaintiff != "" {
		req.Case.Plaintiff = overrides.Case.Plaintiff
	}
	if overrides.Case.Defendant != "" {
		req.Case.Defendant = overrides.Case.Defendant
	}
	if overrides.Case.JudgeName != "" {
		req.Case.JudgeName = overrides.Case.JudgeName
	}
	if overrides.Case.PartyRepresented != "" {
		req.Case.PartyRepresented = overrides.Case.PartyRepresented
	}
	if overrides.Attorney != nil {
		req.Attorney = overrides.Attorney
	}
	if overrides.MotionType != "" {
		req.MotionType = overrides.MotionType
	}
	if overrides.CustomTitle != "" {
		req.CustomTitle = overrides.CustomTitle
	}
	if overrides.Date != "" {
		req.Date = overrides.Date
	}
	if overrides.IncludeCertificate != nil {
		req.IncludeCertificate = overrides.IncludeCertificate
	}
}

// inferDocumentTypeID maps an extracted title to a document-type table ID.
func inferDocumentTypeID(title string) string {
	switch lcvr.InferDocumentType(title) {
	case "reply":
		return "reply"
	case "opposition":
		return "opposition"
	default:
		return "motion_to_dismiss"
	}
}

func writeFiling(req *builder.Request, format, outDir string) error {
	doc, err := builder.NewBuilder().Build(req)
	if err != nil {
		return err
	}

	var out []byte
	var ext string
	switch strings.ToLower(format) {
	case "rtf", "":
		out, ext = builder.EncodeRTF(doc), "rtf"
	case "pdf":
		out, ext = builder.EncodePDF(doc), "pdf"
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	path := filepath.Join(outDir, doc.Filename(ext))
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing filing: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported document types",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-30s %-40s %-10s %s\n", "ID", "NAME", "MAX PAGES", "CATEGORY")
			for _, dt := range lcvr.DefaultDocumentTypes().List() {
				pages := "-"
				if dt.HasPageLimit() {
					pages = fmt.Sprintf("%d", dt.MaxPages)
				}
				fmt.Printf("%-30s %-40s %-10s %s\n", dt.ID, dt.Name, pages, dt.Category)
			}
			return nil
		},
	}
}

func judgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judges [initials]",
		Short: "Look up DC District judges by initials or case number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseNumber, _ := cmd.Flags().GetString("case")
			dir := lcvr.DefaultJudges()

			switch {
			case caseNumber != "":
				judge, ok := dir.FromCaseNumber(caseNumber)
				if !ok {
					return fmt.Errorf("no judge matches case number %q", caseNumber)
				}
				fmt.Printf("%s  %s (%s)\n", judge.Initials, judge.Name, judge.Status)

			case len(args) == 1:
				judge, ok := dir.Lookup(args[0])
				if !ok {
					return fmt.Errorf("no judge with initials %q", args[0])
				}
				fmt.Printf("%s  %s (%s)\n", judge.Initials, judge.Name, judge.Status)

			default:
				for _, j := range dir.Judges {
					fmt.Printf("%-5s %-45s %s\n", j.Initials, j.Name, j.Status)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("case", "", "derive the judge from a case number")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate extraction dumps as they change",
		Long: `Watch a directory of extraction dumps (JSON) and re-run format
validation whenever a file is created or written.

Example:
  docket watch --dir filings/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			specPath, _ := cmd.Flags().GetString("spec")
			if dir == "" {
				return fmt.Errorf("--dir flag is required")
			}

			checker, err := newChecker(specPath)
			if err != nil {
				return err
			}

			w := watch.NewWatcher(dir, checker)
			w.SetOnResult(func(res watch.Result) {
				if res.Err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
					return
				}
				status := "COMPLIANT"
				if !res.Report.Summary.IsCompliant {
					status = "NON-COMPLIANT"
				}
				fmt.Printf("%s: %s (%d errors, %d warnings)\n",
					res.Path, status, res.Report.Summary.Errors, res.Report.Summary.Warnings)
			})

			if err := w.Watch(); err != nil {
				return err
			}
			defer w.StopWatch()
			fmt.Printf("Watching %s (Ctrl-C to stop)\n", dir)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().String("dir", "", "directory of extraction dumps to watch")
	cmd.Flags().String("spec", "", "format spec YAML override")
	return cmd
}
