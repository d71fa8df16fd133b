package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestMoneyFlowSchema(t *testing.T) {
	s, err := schema.Parse(&MoneyFlow{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "money_flows", s.Table)

	t.Run("Audit columns keep their offset", func(t *testing.T) {
		for _, name := range []string{"created_at", "updated_at"} {
			field := s.LookUpField(name)
			require.NotNil(t, field, name)
			assert.Equal(t, "timestamptz", field.TagSettings["TYPE"], name)
		}
	})

	t.Run("Occurred date stays a wall clock", func(t *testing.T) {
		field := s.LookUpField("occurred_date")
		require.NotNil(t, field)
		assert.Equal(t, "timestamp", field.TagSettings["TYPE"])
		assert.True(t, field.NotNull)
	})

	t.Run("Kind uses the enum type", func(t *testing.T) {
		field := s.LookUpField("kind")
		require.NotNil(t, field)
		assert.Equal(t, KindEnumType, field.TagSettings["TYPE"])
		assert.Equal(t, "'expense'", field.TagSettings["DEFAULT"])
	})
}
