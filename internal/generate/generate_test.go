package generate

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldcutz/onebrc/internal/mapper"
	"github.com/coldcutz/onebrc/internal/scanner"
	"github.com/coldcutz/onebrc/internal/station"
)

func writeDict(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, "weather_stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestStationsDedupesAndSkipsComments(t *testing.T) {
	dir := t.TempDir()
	path := writeDict(t, dir,
		"# this is the weather station dictionary",
		"Hamburg;53.55,10.00",
		"Abidjan;5.32,-4.03",
		"Hamburg;53.55,10.00",
	)

	names, err := Stations(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hamburg", "Abidjan"}, names)
}

func TestStationsRejectsEmptyDictionary(t *testing.T) {
	dir := t.TempDir()
	path := writeDict(t, dir, "# only comments")
	_, err := Stations(path)
	assert.Error(t, err)
}

func TestRunProducesRequestedRowCountAndValidGrammar(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "measurements.txt")
	seed := uint64(42)

	err := Run(Options{
		Rows:     2_000,
		Stations: []string{"Hamburg", "Abidjan", "Accra"},
		Out:      out,
		Batches:  4,
		Seed:     &seed,
	})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	sc := bufio.NewScanner(f)
	rows := 0
	stationSet := map[string]bool{"Hamburg": true, "Abidjan": true, "Accra": true}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		rows++
		name, temp := scanner.SplitOnSemicolon(line)
		assert.True(t, stationSet[string(name)], "unexpected station %q", name)

		tenths := scanner.ParseTemperature(temp)
		assert.GreaterOrEqual(t, tenths, int16(-999))
		assert.LessOrEqual(t, tenths, int16(999))

		// grammar sanity: exactly one '.' and one fractional digit
		parts := strings.Split(string(temp), ".")
		require.Len(t, parts, 2)
		require.Len(t, parts[1], 1)
		_, err := strconv.Atoi(parts[1])
		require.NoError(t, err)
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, 2_000, rows)
}

func TestRunOutputRoundTripsThroughAggregator(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "measurements.txt")
	seed := uint64(7)

	require.NoError(t, Run(Options{
		Rows:     500,
		Stations: []string{"X", "Y"},
		Out:      out,
		Batches:  2,
		Seed:     &seed,
	}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	tbl := mapper.NewTable()
	require.NoError(t, mapper.Scan(data, tbl))

	var total uint64
	tbl.ForEach(func(s *station.Stats) { total += s.Count })
	assert.Equal(t, uint64(500), total)
	assert.LessOrEqual(t, tbl.Len(), 2)
}
