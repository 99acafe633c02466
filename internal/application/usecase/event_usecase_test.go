package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
)

var testStart = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func timePtr(tm time.Time) *time.Time { return &tm }

// ──────────────────────────────────────────────────────────────────────────────
// calculateEndDate
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cada unidad de duración suma lo que corresponde sobre el calendario.
func TestCalculateEndDate_Unidades(t *testing.T) {
	cases := []struct {
		unit string
		want time.Time
	}{
		{"days", testStart.AddDate(0, 0, 3)},
		{"weeks", testStart.AddDate(0, 0, 21)},
		{"months", testStart.AddDate(0, 3, 0)},
		{"years", testStart.AddDate(3, 0, 0)},
	}
	for _, tc := range cases {
		got, err := calculateEndDate(model.EventTypeDuration, intPtr(3), tc.unit, testStart)
		require.NoError(t, err, tc.unit)
		require.NotNil(t, got)
		assert.Equal(t, tc.want, *got, tc.unit)
	}
}

// Caso 2: unidad desconocida → entrada inválida.
func TestCalculateEndDate_UnidadDesconocida(t *testing.T) {
	_, err := calculateEndDate(model.EventTypeDuration, intPtr(3), "fortnights", testStart)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 3: evento puntual o sin valor de duración → fin igual al inicio.
func TestCalculateEndDate_SinDuracion(t *testing.T) {
	got, err := calculateEndDate(model.EventTypeSingle, nil, "", testStart)
	require.NoError(t, err)
	assert.Equal(t, testStart, *got)

	// Tipo duration pero sin valor: también colapsa al inicio.
	got, err = calculateEndDate(model.EventTypeDuration, nil, "days", testStart)
	require.NoError(t, err)
	assert.Equal(t, testStart, *got)
}

// ──────────────────────────────────────────────────────────────────────────────
// buildEvent
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: sin fecha en el payload, el evento arranca "ahora" y cuelga del
// producto padre, no del productId del payload.
func TestBuildEvent_DefaultsYPadre(t *testing.T) {
	now := testStart
	ev, err := buildEvent(dto.EventCreationRequest{
		Name:      "Recarga",
		Type:      model.EventTypeSingle,
		ProductID: "otro-producto", // se ignora: manda el padre
	}, "producto-padre", now)
	require.NoError(t, err)

	assert.NotEmpty(t, ev.ID, "el servidor asigna el id")
	assert.Equal(t, "Recarga", ev.Title)
	assert.Equal(t, "producto-padre", ev.ProductID)
	assert.Equal(t, now, ev.StartDate)
	require.NotNil(t, ev.EndDate)
	assert.Equal(t, now, *ev.EndDate)
}

// Caso 5: con fecha explícita y duración, inicio y fin salen del payload.
func TestBuildEvent_ConFechaYDuracion(t *testing.T) {
	ev, err := buildEvent(dto.EventCreationRequest{
		Name:          "Recarga",
		Type:          model.EventTypeDuration,
		DurationValue: intPtr(6),
		DurationUnit:  "months",
		Date:          timePtr(testStart),
	}, "p-1", time.Now())
	require.NoError(t, err)

	assert.Equal(t, testStart, ev.StartDate)
	require.NotNil(t, ev.EndDate)
	assert.Equal(t, testStart.AddDate(0, 6, 0), *ev.EndDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// MergeEventUpdate
// ──────────────────────────────────────────────────────────────────────────────

func sampleEvent() *model.Event {
	end := testStart.AddDate(0, 1, 0)
	return &model.Event{
		ID:            "ev-1",
		Title:         "Inspección",
		Type:          model.EventTypeDuration,
		DurationValue: intPtr(1),
		DurationUnit:  "months",
		StartDate:     testStart,
		EndDate:       &end,
		ProductID:     "p-1",
		IsAllDay:      false,
	}
}

// Caso 6: un payload vacío no cambia nada y no recalcula la fecha de fin.
func TestMergeEventUpdate_PayloadVacio(t *testing.T) {
	original := sampleEvent()
	merged, err := MergeEventUpdate(original, dto.UpdateEventRequest{})
	require.NoError(t, err)
	assert.Equal(t, original, merged)
}

// Caso 7: solo los campos presentes cambian; el resto retiene su valor.
func TestMergeEventUpdate_CambioParcial(t *testing.T) {
	original := sampleEvent()
	merged, err := MergeEventUpdate(original, dto.UpdateEventRequest{
		Title:    strPtr("Inspección anual"),
		IsAllDay: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Inspección anual", merged.Title)
	assert.True(t, merged.IsAllDay)
	assert.Equal(t, original.Type, merged.Type)
	assert.Equal(t, original.StartDate, merged.StartDate)
	assert.Equal(t, original.EndDate, merged.EndDate, "sin cambios de duración no se recalcula el fin")

	// El original no se muta.
	assert.Equal(t, "Inspección", original.Title)
}

// Caso 8: cambiar la duración recalcula la fecha de fin sobre el inicio vigente.
func TestMergeEventUpdate_RecalculaFin(t *testing.T) {
	merged, err := MergeEventUpdate(sampleEvent(), dto.UpdateEventRequest{
		DurationValue: intPtr(2),
		DurationUnit:  strPtr("weeks"),
	})
	require.NoError(t, err)
	require.NotNil(t, merged.EndDate)
	assert.Equal(t, testStart.AddDate(0, 0, 14), *merged.EndDate)
}

// Caso 9: mover la fecha de inicio también recalcula el fin.
func TestMergeEventUpdate_CambioDeInicio(t *testing.T) {
	newStart := testStart.AddDate(0, 0, 5)
	merged, err := MergeEventUpdate(sampleEvent(), dto.UpdateEventRequest{
		StartDate: timePtr(newStart),
	})
	require.NoError(t, err)
	assert.Equal(t, newStart, merged.StartDate)
	require.NotNil(t, merged.EndDate)
	assert.Equal(t, newStart.AddDate(0, 1, 0), *merged.EndDate, "1 mes de duración vigente sobre el nuevo inicio")
}

// Caso 10: el evento jamás cambia de producto por un PATCH.
func TestMergeEventUpdate_ProductIDInmutable(t *testing.T) {
	original := sampleEvent()
	merged, err := MergeEventUpdate(original, dto.UpdateEventRequest{
		Title: strPtr("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, original.ProductID, merged.ProductID)
}

// Caso 11: una unidad de duración inválida en el PATCH corta el merge.
func TestMergeEventUpdate_UnidadInvalida(t *testing.T) {
	_, err := MergeEventUpdate(sampleEvent(), dto.UpdateEventRequest{
		DurationUnit: strPtr("decades"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
