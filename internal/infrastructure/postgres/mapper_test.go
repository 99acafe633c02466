package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
)

var mapperNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func sampleProduct(eventCount int) *model.Product {
	p := &model.Product{
		ID:        "p-1",
		Name:      "Extintor pasillo",
		QRCode:    "QR-001",
		Category:  model.Category{ID: "cat-1", Name: "Mantenimiento"},
		User:      model.User{ID: "u-1", Username: "ana", Role: model.RoleUser},
		CreatedAt: mapperNow,
		UpdatedAt: mapperNow,
	}
	for i := 0; i < eventCount; i++ {
		end := mapperNow.AddDate(0, 1, 0)
		p.AddEvent(model.Event{
			ID:        "ev-" + string(rune('a'+i)),
			Title:     "Recarga",
			Type:      model.EventTypeDuration,
			StartDate: mapperNow,
			EndDate:   &end,
			ProductID: "p-1",
		})
	}
	return p
}

// Caso 1: ida y vuelta dominio → entidad → dominio conserva el agregado
// completo, incluida la colección de eventos.
func TestProductMapper_RoundTrip(t *testing.T) {
	original := sampleProduct(3)

	entity := productToEntity(original)
	back, err := productToDomain(entity)
	require.NoError(t, err)

	assert.Equal(t, original, back)
}

// Caso 2: hacia la entidad cada evento cuelga del padre: FK del producto y
// puntero transitorio al mismo ProductEntity.
func TestProductToEntity_EventosColgadosDelPadre(t *testing.T) {
	entity := productToEntity(sampleProduct(2))

	require.Len(t, entity.Events, 2)
	for _, ev := range entity.Events {
		assert.Equal(t, entity.ID, ev.ProductID)
		assert.Same(t, entity, ev.Product, "el puntero al padre es el mismo cascarón")
	}
}

// Caso 3: hacia el dominio el evento lleva solo el productId, nunca un
// producto anidado: el grafo queda acíclico.
func TestEventToDomain_ReferenciaDebil(t *testing.T) {
	parent := productToEntity(sampleProduct(1))
	ev := eventToDomain(parent.Events[0])

	assert.Equal(t, parent.ID, ev.ProductID)
	// model.Event no tiene campo Product: la aserción es estructural, pero
	// verificamos que el mapeo no dependa del puntero transitorio.
	parent.Events[0].Product = nil
	assert.Equal(t, ev, eventToDomain(parent.Events[0]))
}

// Caso 4: guardar un evento suelto (sin padre) respeta su ProductID.
func TestEventToEntity_SinPadre(t *testing.T) {
	ev := &model.Event{ID: "ev-1", Title: "Recarga", ProductID: "p-9", StartDate: mapperNow}
	entity := eventToEntity(ev, nil)

	assert.Equal(t, "p-9", entity.ProductID)
	assert.Nil(t, entity.Product)
}

// Caso 5: relaciones obligatorias sin resolver son corrupción de datos, no
// un not-found.
func TestProductToDomain_RelacionRota(t *testing.T) {
	entity := productToEntity(sampleProduct(0))
	entity.Category = nil
	_, err := productToDomain(entity)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)

	entity = productToEntity(sampleProduct(0))
	entity.User = nil
	_, err = productToDomain(entity)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

// Caso 6: orphanEventIDs devuelve exactamente los ids que están en la base
// pero ya no en el agregado (la versión explícita del orphan removal).
func TestOrphanEventIDs(t *testing.T) {
	product := sampleProduct(2) // ev-a, ev-b
	entity := productToEntity(product)

	existing := []string{"ev-a", "ev-b", "ev-c", "ev-d"}
	orphans := orphanEventIDs(existing, entity.Events)
	assert.ElementsMatch(t, []string{"ev-c", "ev-d"}, orphans)

	// Sin cambios no hay huérfanos.
	assert.Empty(t, orphanEventIDs([]string{"ev-a", "ev-b"}, entity.Events))

	// Quitar un evento del agregado lo vuelve huérfano.
	product.RemoveEvent("ev-b")
	entity = productToEntity(product)
	assert.Equal(t, []string{"ev-b"}, orphanEventIDs([]string{"ev-a", "ev-b"}, entity.Events))
}
