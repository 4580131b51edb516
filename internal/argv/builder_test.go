// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"errors"
	"slices"
	"testing"
)

func TestBuildFullVector(t *testing.T) {
	t.Parallel()

	got, err := Build(
		map[string]string{"fs.defaultFS": "hdfs://nn:8020"},
		[]string{"/a.jar", "/b.jar"},
		true,
		[]string{"input", "output"},
	)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []string{"-D", "fs.defaultFS=hdfs://nn:8020", "-libjars", "/a.jar,/b.jar", "input", "output"}
	if !slices.Equal(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuildConfPairShape(t *testing.T) {
	t.Parallel()

	conf := map[string]string{
		"mapreduce.job.reduces": "4",
		"fs.defaultFS":          "hdfs://nn:8020",
		"dfs.replication":       "1",
	}

	got, err := Build(conf, nil, false, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(got) != 2*len(conf) {
		t.Fatalf("len = %d, want %d", len(got), 2*len(conf))
	}
	for i := 0; i < len(got); i += 2 {
		if got[i] != ConfFlag {
			t.Errorf("token %d = %q, want %q", i, got[i], ConfFlag)
		}
	}

	// Keys are sorted, so the vector is fully deterministic.
	want := []string{
		"-D", "dfs.replication=1",
		"-D", "fs.defaultFS=hdfs://nn:8020",
		"-D", "mapreduce.job.reduces=4",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()

	conf := map[string]string{"a": "1", "b": "2", "c": "3", "d": "4"}
	libs := []string{"/app.jar", "/dep.jar"}
	extra := []string{"run"}

	first, err := Build(conf, libs, true, extra)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for range 10 {
		again, err := Build(conf, libs, true, extra)
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if !slices.Equal(first, again) {
			t.Fatalf("Build() not deterministic: %v vs %v", first, again)
		}
	}
}

func TestBuildNoLibJarsWhenExcluded(t *testing.T) {
	t.Parallel()

	got, err := Build(map[string]string{"k": "v"}, []string{"/a.jar"}, false, []string{"x"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if slices.Contains(got, LibJarsFlag) {
		t.Errorf("vector contains %q despite includeLibPaths=false: %v", LibJarsFlag, got)
	}
}

func TestBuildRejectsBlankKey(t *testing.T) {
	t.Parallel()

	_, err := Build(map[string]string{"  ": "v"}, nil, false, nil)
	if !errors.Is(err, ErrInvalidConf) {
		t.Errorf("error does not wrap ErrInvalidConf: %v", err)
	}
	var confErr *InvalidConfError
	if !errors.As(err, &confErr) {
		t.Errorf("error is not a *InvalidConfError: %v", err)
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	t.Parallel()

	got, err := Build(nil, nil, false, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Build() = %v, want empty", got)
	}
}
