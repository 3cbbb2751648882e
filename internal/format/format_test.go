package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldcutz/onebrc/internal/station"
)

func TestRenderScenarioA(t *testing.T) {
	tbl := station.New(4)
	tbl.Observe([]byte("Hamburg"), 120)
	tbl.Observe([]byte("Hamburg"), -55)
	tbl.Observe([]byte("Hamburg"), 121)

	assert.Equal(t, "{Hamburg=-5.5/6.2/12.1}\n", Render(tbl))
}

func TestRenderScenarioB(t *testing.T) {
	tbl := station.New(4)
	tbl.Observe([]byte("A"), 10)
	tbl.Observe([]byte("B"), 20)
	tbl.Observe([]byte("A"), 30)

	assert.Equal(t, "{A=1.0/2.0/3.0, B=2.0/2.0/2.0}\n", Render(tbl))
}

func TestRenderScenarioC(t *testing.T) {
	tbl := station.New(4)
	tbl.Observe([]byte("X"), -999)
	tbl.Observe([]byte("X"), 999)

	assert.Equal(t, "{X=-99.9/0.0/99.9}\n", Render(tbl))
}

func TestFormatTenthsNoPlusSign(t *testing.T) {
	assert.Equal(t, "12.1", formatTenths(121))
	assert.Equal(t, "-5.5", formatTenths(-55))
	assert.Equal(t, "0.0", formatTenths(0))
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, int64(1), roundHalfAwayFromZero(0.5))
	assert.Equal(t, int64(-1), roundHalfAwayFromZero(-0.5))
	assert.Equal(t, int64(2), roundHalfAwayFromZero(1.5))
	assert.Equal(t, int64(0), roundHalfAwayFromZero(0.4))
}
