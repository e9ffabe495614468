package placement

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediaorg/internal/media"
)

func mustFile(t *testing.T, path string) media.File {
	t.Helper()
	f, ok := media.NewFile(path)
	if !ok {
		t.Fatalf("media.NewFile(%q) rejected", path)
	}
	return f
}

func TestFolderPrefix(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		".":                        "",
		"Family Trip - 2024/Day.1": "_Family_Trip_2024_Day_1",
		"Family/Birthday":          "_Family_Birthday",
		"!!!/Birthday":             "_Birthday",
		"Vacation":                 "_Vacation",
		"a/!!!/b":                  "_a_b",
		"@@@":                      "",
		"_Private":                 "__Private",
		"Summer - /x":              "_Summer__x",
	}
	for in, want := range cases {
		if got := FolderPrefix(in); got != want {
			t.Fatalf("FolderPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlanRootLevelFile(t *testing.T) {
	file := mustFile(t, "/src/IMG_1.jpg")
	date := time.Date(2023, 1, 2, 8, 0, 0, 0, time.UTC)

	plan := PlanFile(file, date, ".", "/out", NewSet().Exists)

	if plan.Dir != filepath.Join("/out", "2023", "2023_01") {
		t.Fatalf("dir = %q", plan.Dir)
	}
	if plan.Name != "2023_01_02_IMG_1.jpg" {
		t.Fatalf("name = %q", plan.Name)
	}
}

func TestPlanPreservesExtensionCase(t *testing.T) {
	file := mustFile(t, "/src/Vacation/beach.JPG")
	date := time.Date(2022, 7, 4, 10, 0, 0, 0, time.UTC)

	plan := PlanFile(file, date, "Vacation", "/out", nil)

	if plan.Dir != filepath.Join("/out", "2022", "2022_07") {
		t.Fatalf("dir = %q", plan.Dir)
	}
	if plan.Name != "2022_07_04_Vacation_beach.JPG" {
		t.Fatalf("name = %q", plan.Name)
	}
	if plan.Path() != filepath.Join("/out", "2022", "2022_07", "2022_07_04_Vacation_beach.JPG") {
		t.Fatalf("path = %q", plan.Path())
	}
}

func TestPlanCollisionCounter(t *testing.T) {
	file := mustFile(t, "/src/IMG_0001.jpg")
	date := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	dir := filepath.Join("/out", "2024", "2024_05")
	existing := NewSet(
		filepath.Join(dir, "2024_05_12_IMG_0001.jpg"),
		filepath.Join(dir, "2024_05_12_IMG_0001_1.jpg"),
	)

	plan := PlanFile(file, date, "", "/out", existing.Exists)

	if plan.Name != "2024_05_12_IMG_0001_2.jpg" {
		t.Fatalf("name = %q, want 2024_05_12_IMG_0001_2.jpg", plan.Name)
	}
}

func TestPlanCollisionIsCaseSensitive(t *testing.T) {
	file := mustFile(t, "/src/IMG_0001.jpg")
	date := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	existing := NewSet(filepath.Join("/out", "2024", "2024_05", "2024_05_12_IMG_0001.JPG"))

	plan := PlanFile(file, date, "", "/out", existing.Exists)

	if plan.Name != "2024_05_12_IMG_0001.jpg" {
		t.Fatalf("name = %q", plan.Name)
	}
}

func TestPlanEmptyExtension(t *testing.T) {
	file := media.File{Path: "/src/README", Base: "README", Category: media.CategoryImage}
	date := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	existing := NewSet(filepath.Join("/out", "2024", "2024_12", "2024_12_01_README"))

	plan := PlanFile(file, date, "", "/out", existing.Exists)

	if plan.Name != "2024_12_01_README_1" {
		t.Fatalf("name = %q", plan.Name)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	file := mustFile(t, "/src/Trip/clip.mov")
	date := time.Date(2021, 11, 30, 23, 59, 0, 0, time.UTC)
	existing := NewSet(filepath.Join("/out", "2021", "2021_11", "2021_11_30_Trip_clip.mov"))

	first := PlanFile(file, date, "Trip", "/out", existing.Exists)
	second := PlanFile(file, date, "Trip", "/out", existing.Exists)
	if first != second {
		t.Fatalf("plans differ: %+v vs %+v", first, second)
	}
}

func TestSequentialPlanningYieldsDistinctNames(t *testing.T) {
	file := mustFile(t, "/src/Party/IMG.jpg")
	date := time.Date(2020, 2, 29, 12, 0, 0, 0, time.UTC)
	res := NewReservations(nil)

	seen := map[string]struct{}{}
	for i := 0; i < 5; i++ {
		plan := PlanFile(file, date, "Party", "/out", res.Exists)
		if _, dup := seen[plan.Name]; dup {
			t.Fatalf("duplicate name %q on iteration %d", plan.Name, i)
		}
		seen[plan.Name] = struct{}{}
		res.Reserve(plan.Path())
	}
	if _, ok := seen["2020_02_29_Party_IMG_4.jpg"]; !ok {
		t.Fatalf("expected counter to reach _4, got %v", seen)
	}
}

func TestOnDisk(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "a.jpg")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !OnDisk(present) {
		t.Fatal("expected existing file to be reported")
	}
	if OnDisk(filepath.Join(dir, "b.jpg")) {
		t.Fatal("expected missing file to be absent")
	}

	file := mustFile(t, "/src/a.jpg")
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	target := Directory(dir, date)
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "2024_01_01_a.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	plan := PlanFile(file, date, "", dir, OnDisk)
	if plan.Name != "2024_01_01_a_1.jpg" {
		t.Fatalf("name = %q", plan.Name)
	}
}

func TestReservationsFallThroughToBase(t *testing.T) {
	base := NewSet("/out/x.jpg")
	res := NewReservations(base.Exists)
	if !res.Exists("/out/x.jpg") {
		t.Fatal("expected base entry to exist")
	}
	if res.Exists("/out/y.jpg") {
		t.Fatal("expected y to be free")
	}
	res.Reserve("/out/y.jpg")
	if !res.Exists("/out/./y.jpg") {
		t.Fatal("expected reserved path to exist after cleaning")
	}
}
