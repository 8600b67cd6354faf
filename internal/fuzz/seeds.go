package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

// короткие фрагменты на каждую ветку сканера
var snippetSeeds = []string{
	"",
	"int main() { return 0; }\n#",
	"a>>=b<<=c->d",
	"0x1F 0xZZ 017 089 0 00 1. .5 1e5 1e+ 1.2.3 017e5 1..2 07..",
	`'a' '' 'ab' '\n' '\101' '\8' 'x`,
	`"ok\t\"q\"" "bad \q" "unclosed`,
	"/* open comment",
	"// line\n9abc @ $ `",
	"e\u0301 \u00e9 \ufeffx",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".c", ".txt":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
