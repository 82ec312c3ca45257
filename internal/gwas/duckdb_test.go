package gwas

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuckDBEngineMatchesStreamEngine(t *testing.T) {
	d := &DuckDBEngine{}
	require.NoError(t, d.Open())
	defer d.Close()

	stream := &StreamEngine{}

	for _, sel := range []Selection{
		{PThreshold: 1e-3},
		{TopN: 3},
	} {
		want, err := stream.Select(sumstatsPath, sel)
		require.NoError(t, err)
		got, err := d.Select(sumstatsPath, sel)
		require.NoError(t, err)

		require.Len(t, got, len(want), "selection %s", sel)
		for i := range want {
			assert.Equal(t, want[i].RSID, got[i].RSID, "selection %s row %d", sel, i)
			assert.Equal(t, want[i].A1, got[i].A1)
			assert.InDelta(t, want[i].Beta, got[i].Beta, 1e-12)
			assert.InDelta(t, want[i].Pval, got[i].Pval, 1e-12)
		}
	}
}

func TestDuckDBEngineMissingFile(t *testing.T) {
	d := &DuckDBEngine{}
	defer d.Close()

	_, err := d.Select("testdata/nope.tsv", Selection{PThreshold: 0.05})
	assert.ErrorIs(t, err, ErrMissingReferenceData)
}

func TestDuckDBEngineConcurrentSelect(t *testing.T) {
	d := &DuckDBEngine{}
	defer d.Close()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	rows := make([][]Row, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rows[i], errs[i] = d.Select(sumstatsPath, Selection{TopN: 2})
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, rows[i], 2)
		assert.Equal(t, "rs1001", rows[i][0].RSID)
		assert.Equal(t, "rs1002", rows[i][1].RSID)
	}
}
