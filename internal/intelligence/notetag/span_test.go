package notetag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityKind_String(t *testing.T) {
	assert.Equal(t, "IncorporationDate", KindIncorporationDate.String())
	assert.Equal(t, "GeneralDate", KindGeneralDate.String())
	assert.Equal(t, "EntityKind(99)", EntityKind(99).String())
}

func TestEntityKind_Priority(t *testing.T) {
	cases := map[EntityKind]int{
		KindIncorporationDate: 100,
		KindRegisteredAddress: 90,
		KindTradingSymbol:     85,
		KindCompanyName:       80,
		KindFinancialAmount:   70,
		KindFinancialConcept:  60,
		KindGeneralDate:       50,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.Priority(), kind.String())
	}
}

func TestEntityKind_PriorityTableComplete(t *testing.T) {
	for k := EntityKind(0); k < numEntityKinds; k++ {
		_, ok := kindPriorities[k]
		assert.True(t, ok, "kind %s has no priority", k)
	}
}

func TestEntityKind_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(KindTradingSymbol)
	require.NoError(t, err)
	assert.Equal(t, `"TradingSymbol"`, string(data))

	var k EntityKind
	require.NoError(t, json.Unmarshal(data, &k))
	assert.Equal(t, KindTradingSymbol, k)

	assert.Error(t, json.Unmarshal([]byte(`"NotAKind"`), &k))
}

func TestNewSpan(t *testing.T) {
	text := "BestCo Ltd. was incorporated"

	s, ok := newSpan(text, 0, 11, KindCompanyName)
	require.True(t, ok)
	assert.Equal(t, "BestCo Ltd.", s.Text)
	assert.Equal(t, 11, s.Len())
	assert.Equal(t, 80, s.Priority())

	// Zero-length and out-of-range spans never become candidates.
	_, ok = newSpan(text, 5, 5, KindCompanyName)
	assert.False(t, ok)
	_, ok = newSpan(text, -1, 4, KindCompanyName)
	assert.False(t, ok)
	_, ok = newSpan(text, 0, len(text)+1, KindCompanyName)
	assert.False(t, ok)
}

func TestValidateSpan(t *testing.T) {
	assert.NoError(t, validateSpan(Span{Start: 0, End: 4}, 10))
	assert.Error(t, validateSpan(Span{Start: 4, End: 4}, 10))
	assert.Error(t, validateSpan(Span{Start: -1, End: 4}, 10))
	assert.Error(t, validateSpan(Span{Start: 0, End: 11}, 10))
}
