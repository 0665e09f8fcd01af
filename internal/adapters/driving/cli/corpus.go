package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	corpussqlite "github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/corpus/sqlite"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and manage the reference corpus",
	Long: `Commands for listing, inspecting, and importing the reference documents
that ranking draws from.`,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reference documents",
	RunE:  runCorpusList,
}

var corpusShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a reference document in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusShow,
}

var corpusImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import reference documents from a JSON file",
	Long: `Imports documents into the SQLite corpus, replacing documents that share
an ID. The file must contain a JSON array of documents:

  [
    {
      "id": 1,
      "subject_category": "Science",
      "applicable_grades": ["1", "2"],
      "keywords": ["animals", "habitat"],
      "body": "Reference passage...",
      "source_citation": "Framework, unit 3",
      "suggested_activities": ["habitat walk"],
      "concept_tags": ["ecology"],
      "pedagogical_level": "concrete",
      "cross_links": ["Geography"]
    }
  ]

Subsequent runs use the imported corpus instead of the embedded seed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusImport,
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus composition statistics",
	RunE:  runCorpusStats,
}

func init() {
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusShowCmd)
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusStatsCmd)
	rootCmd.AddCommand(corpusCmd)
}

// corpusDocument is the JSON wire format for corpus import files.
type corpusDocument struct {
	ID                  int      `json:"id"`
	SubjectCategory     string   `json:"subject_category"`
	ApplicableGrades    []string `json:"applicable_grades"`
	Keywords            []string `json:"keywords"`
	Body                string   `json:"body"`
	SourceCitation      string   `json:"source_citation"`
	SuggestedActivities []string `json:"suggested_activities"`
	ConceptTags         []string `json:"concept_tags"`
	PedagogicalLevel    string   `json:"pedagogical_level"`
	CrossLinks          []string `json:"cross_links"`
}

func (d corpusDocument) toDomain() domain.ReferenceDocument {
	return domain.ReferenceDocument{
		ID:                  d.ID,
		SubjectCategory:     d.SubjectCategory,
		ApplicableGrades:    d.ApplicableGrades,
		Keywords:            d.Keywords,
		Body:                d.Body,
		SourceCitation:      d.SourceCitation,
		SuggestedActivities: d.SuggestedActivities,
		ConceptTags:         d.ConceptTags,
		PedagogicalLevel:    domain.PedagogicalLevel(d.PedagogicalLevel),
		CrossLinks:          d.CrossLinks,
	}
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if corpusStore == nil {
		return errors.New("corpus store not configured")
	}

	docs, err := corpusStore.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing corpus: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("Corpus is empty.")
		return nil
	}

	for _, doc := range docs {
		keywords := strings.Join(doc.Keywords, ", ")
		cmd.Printf("  #%-3d %-15s grades %-12s %s\n",
			doc.ID, doc.SubjectCategory, strings.Join(doc.ApplicableGrades, ","), keywords)
	}
	cmd.Printf("\n%d documents.\n", len(docs))

	return nil
}

func runCorpusShow(cmd *cobra.Command, args []string) error {
	if corpusStore == nil {
		return errors.New("corpus store not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid document ID %q", args[0])
	}

	doc, err := corpusStore.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("fetching document: %w", err)
	}

	cmd.Printf("Document #%d\n", doc.ID)
	cmd.Printf("  Subject: %s\n", doc.SubjectCategory)
	cmd.Printf("  Grades: %s\n", strings.Join(doc.ApplicableGrades, ", "))
	cmd.Printf("  Keywords: %s\n", strings.Join(doc.Keywords, ", "))
	cmd.Printf("  Concept tags: %s\n", strings.Join(doc.ConceptTags, ", "))
	cmd.Printf("  Level: %s\n", doc.PedagogicalLevel)
	if len(doc.CrossLinks) > 0 {
		cmd.Printf("  Cross links: %s\n", strings.Join(doc.CrossLinks, ", "))
	}
	if len(doc.SuggestedActivities) > 0 {
		cmd.Println("  Activities:")
		for _, a := range doc.SuggestedActivities {
			cmd.Printf("    - %s\n", a)
		}
	}
	if doc.SourceCitation != "" {
		cmd.Printf("  Source: %s\n", doc.SourceCitation)
	}
	if doc.Body != "" {
		cmd.Println()
		cmd.Println(doc.Body)
	}

	return nil
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var wireDocs []corpusDocument
	if err := json.Unmarshal(data, &wireDocs); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	docs := make([]domain.ReferenceDocument, 0, len(wireDocs))
	for _, wd := range wireDocs {
		docs = append(docs, wd.toDomain())
	}

	store, err := corpussqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening corpus database: %w", err)
	}
	defer store.Close()

	if err := store.Import(cmd.Context(), docs); err != nil {
		return fmt.Errorf("importing corpus: %w", err)
	}

	cmd.Printf("Imported %d documents into %s\n", len(docs), store.Path())
	return nil
}

func runCorpusStats(cmd *cobra.Command, _ []string) error {
	if corpusStore == nil {
		return errors.New("corpus store not configured")
	}

	docs, err := corpusStore.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	bySubject := make(map[string]int)
	byGrade := make(map[string]int)
	for _, doc := range docs {
		bySubject[doc.SubjectCategory]++
		for _, g := range doc.ApplicableGrades {
			byGrade[g]++
		}
	}

	cmd.Printf("Documents: %d\n\n", len(docs))

	cmd.Println("By subject:")
	for _, subject := range sortedKeys(bySubject) {
		cmd.Printf("  %-15s %d\n", subject, bySubject[subject])
	}

	cmd.Println("\nBy grade:")
	for _, grade := range sortedKeys(byGrade) {
		cmd.Printf("  %-15s %d\n", grade, byGrade[grade])
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
