// cmd/catalog/main.go
//
// カタログ生成ツール。語彙リストのCSVをvocab.jsonへ正規化し、
// さらに出題形式ごとに展開してquestions.json(問題IDキーのオブジェクト)を生成します。
// 展開はオフラインで一度だけ行い、サーバーはquestions.jsonを読むだけにします。
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go_5_vocab_drill/internal/catalog"
	"go_5_vocab_drill/internal/model"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Build the question catalog from vocabulary lists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newNormalizeCmd(), newExpandCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newNormalizeCmd() *cobra.Command {
	var dir, out string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Merge per-level CSV files into vocab.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []model.VocabEntry
			for _, level := range model.Levels {
				levelEntries, err := readLevelCSV(filepath.Join(dir, string(level)+".csv"), level)
				if err != nil {
					return err
				}
				entries = append(entries, levelEntries...)
			}
			if err := writeJSON(out, entries); err != nil {
				return err
			}
			fmt.Printf("Wrote %d vocab entries to %s\n", len(entries), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "vocab_list", "directory containing <level>.csv files")
	cmd.Flags().StringVar(&out, "out", "vocab.json", "output path for the normalized vocab list")
	return cmd
}

func newExpandCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand vocab.json into questions.json with derived question ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("reading vocab list: %w", err)
			}
			var entries []model.VocabEntry
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("decoding vocab list: %w", err)
			}

			// ID衝突があればここで失敗する(曖昧なカタログは配布しない)
			questions, err := catalog.ExpandEntries(entries)
			if err != nil {
				return err
			}
			if err := writeJSON(out, questions); err != nil {
				return err
			}
			fmt.Printf("Wrote %d questions to %s\n", len(questions), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "vocab.json", "input path of the normalized vocab list")
	cmd.Flags().StringVar(&out, "out", "questions.json", "output path for the expanded question catalog")
	return cmd
}

// readLevelCSV は1レベル分のCSV(ヘッダ行あり、列: expression,reading,meaning)を読み込みます
func readLevelCSV(path string, level model.Level) ([]model.VocabEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []model.VocabEntry
	for i, row := range rows {
		if i == 0 {
			// ヘッダ行
			continue
		}
		if len(row) < 3 {
			continue
		}
		entries = append(entries, model.VocabEntry{
			Level:      level,
			Expression: row[0],
			Reading:    row[1],
			Meaning:    row[2],
		})
	}
	return entries, nil
}

// writeJSON は日本語をエスケープせずにJSONを書き出します
func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
