package enum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/invoicely/invoicely-api/internal/domain/enum"
)

func TestParseInvoiceStatus(t *testing.T) {
	t.Parallel()

	for _, status := range enum.InvoiceStatuses {
		parsed, err := enum.ParseInvoiceStatus(status.String())
		require.NoError(t, err)
		require.Equal(t, status, parsed)
	}

	_, err := enum.ParseInvoiceStatus("archived")
	require.Error(t, err)

	_, err = enum.ParseInvoiceStatus("")
	require.Error(t, err)
}

func TestInvoiceStatusScan(t *testing.T) {
	t.Parallel()

	var s enum.InvoiceStatus
	require.NoError(t, s.Scan("paid"))
	require.Equal(t, enum.InvoiceStatusPaid, s)

	require.NoError(t, s.Scan([]byte("overdue")))
	require.Equal(t, enum.InvoiceStatusOverdue, s)

	require.NoError(t, s.Scan(nil))
	require.Equal(t, enum.InvoiceStatusDraft, s)

	require.Error(t, s.Scan(42))
}
