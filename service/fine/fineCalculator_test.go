package fine_test

import (
	"testing"

	"booklending/service/fine"

	"github.com/stretchr/testify/require"
)

func TestFine(t *testing.T) {
	c := fine.NewCalculator()

	require.Equal(t, 0.0, c.Fine(0))
	require.Equal(t, 0.0, c.Fine(-3))
	require.Equal(t, fine.DefaultDailyRate, c.Fine(1))
	require.Equal(t, 7*fine.DefaultDailyRate, c.Fine(7))
}

func TestFine_Capped(t *testing.T) {
	c := fine.NewCalculatorWith(500, 5000)

	require.Equal(t, 1500.0, c.Fine(3))
	require.Equal(t, 5000.0, c.Fine(10), "at the cap")
	require.Equal(t, 5000.0, c.Fine(100), "over the cap")
}

func TestFine_Uncapped(t *testing.T) {
	c := fine.NewCalculatorWith(500, 0)
	require.Equal(t, 50000.0, c.Fine(100))
}
