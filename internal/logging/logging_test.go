package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupDisabledUsesFallback(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f, err := Setup(false, nil)
	if err != nil || f != nil {
		t.Fatalf("Setup(false) = %v, %v", f, err)
	}
	if log.Writer() != io.Discard {
		t.Fatalf("log output = %v, want io.Discard", log.Writer())
	}

	if _, err := Setup(false, os.Stderr); err != nil {
		t.Fatal(err)
	}
	if log.Writer() != os.Stderr {
		t.Fatal("fallback writer not used")
	}
}

func TestSetupDebugWritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	t.Chdir(t.TempDir())

	f, err := Setup(true, nil)
	if err != nil {
		t.Fatalf("Setup(true): %v", err)
	}
	defer f.Close()

	log.Println("test message")

	info, err := os.Stat(filepath.Join(Dir, FileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("log file is empty")
	}
}
