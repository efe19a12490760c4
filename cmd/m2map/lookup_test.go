package main

import (
	"testing"
)

var testListings = map[string]string{
	"main.csv": "1;Creature/Murloc/Murloc.m2\n" +
		"2;creature/murloc/murloc00.skin\n" +
		"10;World\\Maps\\Azeroth\\Azeroth.wdt\n",
	"zz_dupes.txt": "11;creature\\murloc\\MURLOC.m2\n" +
		"2;other/path.blp\n" +
		"bogus line\n",
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		exact          bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "by id",
			query:       "2",
			wantContain: []string{"2\tcreature/murloc/murloc00.skin"},
		},
		{
			name:        "by partial path",
			query:       "Maps/Azeroth",
			wantContain: []string{"10\tWorld/Maps/Azeroth/Azeroth.wdt"},
		},
		{
			name:        "partial path with backslashes",
			query:       `Murloc\Murloc.m2`,
			wantContain: []string{"1\tCreature/Murloc/Murloc.m2"},
		},
		{
			name:        "exact path ignores case and separators",
			query:       `CREATURE\MURLOC\MURLOC.M2`,
			exact:       true,
			wantContain: []string{"1\tCreature/Murloc/Murloc.m2"},
		},
		{
			name:    "exact path requires whole path",
			query:   "murloc.m2",
			exact:   true,
			wantErr: true,
		},
		{
			name:        "as JSON",
			query:       "10",
			wantJSON:    true,
			wantContain: []string{`"id": 10`, `"path": "World/Maps/Azeroth/Azeroth.wdt"`},
		},
		{
			name:    "duplicate id was skipped",
			query:   "other/path.blp",
			wantErr: true,
		},
		{
			name:    "duplicate path was skipped",
			query:   "11",
			wantErr: true,
		},
		{
			name:    "unknown id",
			query:   "404",
			wantErr: true,
		},
	}

	dir := writeMappings(t, testListings)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(dir)
			jsonOut = tt.wantJSON
			lookupExact = tt.exact

			output, err := captureOutput(t, func() error {
				return runLookup([]string{tt.query})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runLookup() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}

			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
	lookupExact = false
}

func TestLookupCommand_MissingDirectory(t *testing.T) {
	resetFlags(t.TempDir() + "/nope")

	_, err := captureOutput(t, func() error {
		return runLookup([]string{"1"})
	})
	if err == nil {
		t.Fatal("expected error for missing mappings directory")
	}
	assertContains(t, err.Error(), []string{"failed to load mappings", "does not exist"})
}

func TestLookupCommand_EmptyDirectory(t *testing.T) {
	resetFlags(writeMappings(t, nil))

	_, err := captureOutput(t, func() error {
		return runLookup([]string{"1"})
	})
	if err == nil {
		t.Fatal("expected error for empty mappings directory")
	}
	assertContains(t, err.Error(), []string{"no mapping entries found"})
}
