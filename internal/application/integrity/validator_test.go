package integrity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhorman/productos-api/internal/application/integrity"
	"github.com/yhorman/productos-api/internal/domain"
	"github.com/yhorman/productos-api/internal/domain/entity"
	"github.com/yhorman/productos-api/internal/domain/repository"
	"github.com/yhorman/productos-api/pkg/normalize"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (índices únicos estilo arena: clave normalizada -> ID)
// ──────────────────────────────────────────────────────────────────────────────

type usuariosMem struct {
	seq        int64
	porID      map[int64]*entity.Usuario
	porUsuario map[string]int64
	porEmail   map[string]int64
}

func newUsuariosMem() *usuariosMem {
	return &usuariosMem{
		porID:      map[int64]*entity.Usuario{},
		porUsuario: map[string]int64{},
		porEmail:   map[string]int64{},
	}
}

func (m *usuariosMem) Create(u *entity.Usuario) error {
	m.seq++
	u.ID = m.seq
	cp := *u
	m.porID[u.ID] = &cp
	m.porUsuario[normalize.Key(u.Username)] = u.ID
	m.porEmail[normalize.Key(u.Email)] = u.ID
	return nil
}

func (m *usuariosMem) GetByID(id int64) (*entity.Usuario, error) {
	u, ok := m.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *usuariosMem) GetByUsername(username string) (*entity.Usuario, error) {
	id, ok := m.porUsuario[normalize.Key(username)]
	if !ok {
		return nil, nil
	}
	return m.GetByID(id)
}

func (m *usuariosMem) GetByEmail(email string) (*entity.Usuario, error) {
	id, ok := m.porEmail[normalize.Key(email)]
	if !ok {
		return nil, nil
	}
	return m.GetByID(id)
}

func (m *usuariosMem) Update(u *entity.Usuario) error {
	cp := *u
	m.porID[u.ID] = &cp
	return nil
}

func (m *usuariosMem) List(limit, offset int) ([]*entity.Usuario, error) {
	var list []*entity.Usuario
	for i := int64(1); i <= m.seq; i++ {
		if u, ok := m.porID[i]; ok {
			cp := *u
			list = append(list, &cp)
		}
	}
	return list, nil
}

type productosMem struct {
	seq       int64
	porID     map[int64]*entity.Producto
	porNombre map[string]int64
}

func newProductosMem() *productosMem {
	return &productosMem{porID: map[int64]*entity.Producto{}, porNombre: map[string]int64{}}
}

func (m *productosMem) Create(p *entity.Producto) error {
	m.seq++
	p.ID = m.seq
	cp := *p
	m.porID[p.ID] = &cp
	m.porNombre[normalize.Key(p.Nombre)] = p.ID
	return nil
}

func (m *productosMem) GetByID(id int64) (*entity.Producto, error) {
	p, ok := m.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *productosMem) GetByNombre(nombre string) (*entity.Producto, error) {
	id, ok := m.porNombre[normalize.Key(nombre)]
	if !ok {
		return nil, nil
	}
	return m.GetByID(id)
}

func (m *productosMem) Update(p *entity.Producto) error {
	anterior, ok := m.porID[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	delete(m.porNombre, normalize.Key(anterior.Nombre))
	cp := *p
	m.porID[p.ID] = &cp
	m.porNombre[normalize.Key(p.Nombre)] = p.ID
	return nil
}

func (m *productosMem) List(f repository.ProductoFilter) ([]*entity.Producto, error) { return nil, nil }

func (m *productosMem) Delete(id int64) error {
	p, ok := m.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(m.porNombre, normalize.Key(p.Nombre))
	delete(m.porID, id)
	return nil
}

// referenciasMem simula las tablas externas. Con tablasAusentes la
// verificación se omite, como cuando proveedores/impuestos no existen en la DB.
type referenciasMem struct {
	tablasAusentes bool
	proveedores    map[int64]bool
	impuestos      map[int64]bool
}

func (m *referenciasMem) ProveedorExiste(id int64) (bool, error) {
	if m.tablasAusentes {
		return true, nil
	}
	return m.proveedores[id], nil
}

func (m *referenciasMem) ImpuestoExiste(id int64) (bool, error) {
	if m.tablasAusentes {
		return true, nil
	}
	return m.impuestos[id], nil
}

func refsConTodo() *referenciasMem {
	return &referenciasMem{
		proveedores: map[int64]bool{1: true, 2: true},
		impuestos:   map[int64]bool{1: true},
	}
}

func productoValido() *entity.Producto {
	return &entity.Producto{
		Nombre:           "Teclado mecánico",
		Descripcion:      "Switches rojos",
		Estado:           entity.EstadoActivo,
		FechaEntrada:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		NivelMinimoStock: 5,
		ProveedorID:      1,
		ImpuestoID:       1,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarUsuario_InsertsSecuencialesConCamposDistintos(t *testing.T) {
	repo := newUsuariosMem()
	v := integrity.NewUsuarioValidator(repo)

	for _, c := range []struct{ username, email string }{
		{"ana", "ana@x.com"},
		{"benito", "benito@x.com"},
		{"carla", "carla@x.com"},
	} {
		u := &entity.Usuario{Username: c.username, Email: c.email, HashedPassword: "h"}
		require.NoError(t, v.Validar(u))
		require.NoError(t, repo.Create(u))
	}
}

func TestValidarUsuario_UsernameDuplicado_AunConEmailDistinto(t *testing.T) {
	repo := newUsuariosMem()
	v := integrity.NewUsuarioValidator(repo)

	primero := &entity.Usuario{Username: "ana", Email: "ana@x.com", HashedPassword: "h1"}
	require.NoError(t, v.Validar(primero))
	require.NoError(t, repo.Create(primero))

	segundo := &entity.Usuario{Username: "ana", Email: "other@x.com", HashedPassword: "h2"}
	err := v.Validar(segundo)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUniquenessViolation)
	assert.Equal(t, "username", domain.ViolatedField(err))
}

func TestValidarUsuario_EmailDuplicado(t *testing.T) {
	repo := newUsuariosMem()
	v := integrity.NewUsuarioValidator(repo)

	require.NoError(t, repo.Create(&entity.Usuario{Username: "ana", Email: "ana@x.com", HashedPassword: "h"}))

	err := v.Validar(&entity.Usuario{Username: "otra", Email: "ana@x.com", HashedPassword: "h"})
	assert.ErrorIs(t, err, domain.ErrUniquenessViolation)
	assert.Equal(t, "email", domain.ViolatedField(err))
}

func TestValidarUsuario_UpdateExcluyeLaPropiaFila(t *testing.T) {
	repo := newUsuariosMem()
	v := integrity.NewUsuarioValidator(repo)

	u := &entity.Usuario{Username: "ana", Email: "ana@x.com", HashedPassword: "h"}
	require.NoError(t, repo.Create(u))

	// Revalidar el mismo usuario (mismo ID) no debe chocar consigo mismo.
	assert.NoError(t, v.Validar(u))
}

func TestValidarUsuario_UsernameDuplicadoConDistintaCaja(t *testing.T) {
	repo := newUsuariosMem()
	v := integrity.NewUsuarioValidator(repo)

	require.NoError(t, repo.Create(&entity.Usuario{Username: "ana", Email: "ana@x.com", HashedPassword: "h"}))

	// La unicidad compara por clave normalizada: "Ana" choca con "ana".
	err := v.Validar(&entity.Usuario{Username: "Ana", Email: "otra@x.com", HashedPassword: "h"})
	assert.ErrorIs(t, err, domain.ErrUniquenessViolation)
	assert.Equal(t, "username", domain.ViolatedField(err))
}

func TestValidarUsuario_LongitudesFueraDeLimite(t *testing.T) {
	v := integrity.NewUsuarioValidator(newUsuariosMem())

	err := v.Validar(&entity.Usuario{
		Username:       strings.Repeat("a", entity.MaxUsernameLen+1),
		Email:          "x@x.com",
		HashedPassword: "h",
	})
	assert.ErrorIs(t, err, domain.ErrLengthViolation)
	assert.Equal(t, "username", domain.ViolatedField(err))

	err = v.Validar(&entity.Usuario{Username: "ana", Email: "", HashedPassword: "h"})
	assert.ErrorIs(t, err, domain.ErrLengthViolation)
	assert.Equal(t, "email", domain.ViolatedField(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarProducto_CandidatoValido(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), refsConTodo())
	assert.NoError(t, v.Validar(productoValido()))
}

func TestValidarProducto_NivelMinimoStockNoPositivo(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), refsConTodo())

	for _, nivel := range []int{0, -3} {
		p := productoValido()
		p.NivelMinimoStock = nivel
		err := v.Validar(p)
		assert.ErrorIs(t, err, domain.ErrRangeViolation, "nivel %d debe rechazarse", nivel)
		assert.Equal(t, "nivel_minimo_stock", domain.ViolatedField(err))
	}
}

func TestValidarProducto_EstadoFueraDelDominio(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), refsConTodo())

	p := productoValido()
	p.Estado = "pausado"
	err := v.Validar(p)
	assert.ErrorIs(t, err, domain.ErrDomainViolation)
	assert.Equal(t, "estado", domain.ViolatedField(err))
}

func TestValidarProducto_NombreDuplicado_SinImportarOtrosCampos(t *testing.T) {
	repo := newProductosMem()
	v := integrity.NewProductoValidator(repo, refsConTodo())

	primero := productoValido()
	require.NoError(t, v.Validar(primero))
	require.NoError(t, repo.Create(primero))

	segundo := productoValido()
	segundo.Descripcion = "otra descripción"
	segundo.Estado = entity.EstadoDescontinuado
	segundo.NivelMinimoStock = 99
	err := v.Validar(segundo)
	assert.ErrorIs(t, err, domain.ErrUniquenessViolation)
	assert.Equal(t, "nombre", domain.ViolatedField(err))
}

func TestValidarProducto_NombreDuplicadoConDistintaCaja(t *testing.T) {
	repo := newProductosMem()
	v := integrity.NewProductoValidator(repo, refsConTodo())

	require.NoError(t, repo.Create(productoValido()))

	// La unicidad compara por clave normalizada: cambiar la caja no evita el choque.
	p := productoValido()
	p.Nombre = "TECLADO MECÁNICO"
	err := v.Validar(p)
	assert.ErrorIs(t, err, domain.ErrUniquenessViolation)
	assert.Equal(t, "nombre", domain.ViolatedField(err))
}

func TestValidarProducto_DescripcionEnElLimite(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), refsConTodo())

	// El límite es en caracteres, no en bytes: 1000 caracteres acentuados
	// (2000 bytes en UTF-8) siguen siendo válidos.
	p := productoValido()
	p.Descripcion = strings.Repeat("á", entity.MaxDescripcionLen)
	assert.NoError(t, v.Validar(p))

	p = productoValido()
	p.Descripcion = strings.Repeat("á", entity.MaxDescripcionLen+1)
	err := v.Validar(p)
	assert.ErrorIs(t, err, domain.ErrLengthViolation)
	assert.Equal(t, "descripcion", domain.ViolatedField(err))
}

func TestValidarProducto_FechaEntradaFutura(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), refsConTodo())

	p := productoValido()
	p.FechaEntrada = time.Now().AddDate(0, 0, 2)
	err := v.Validar(p)
	assert.ErrorIs(t, err, domain.ErrRangeViolation)
	assert.Equal(t, "fecha_entrada", domain.ViolatedField(err))
}

func TestValidarProducto_ProveedorInexistente(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), refsConTodo())

	p := productoValido()
	p.ProveedorID = 404
	err := v.Validar(p)
	assert.ErrorIs(t, err, domain.ErrReferenceViolation)
	assert.Equal(t, "proveedor_id", domain.ViolatedField(err))
}

func TestValidarProducto_ImpuestoInexistente(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), refsConTodo())

	p := productoValido()
	p.ImpuestoID = 404
	err := v.Validar(p)
	assert.ErrorIs(t, err, domain.ErrReferenceViolation)
	assert.Equal(t, "impuesto_id", domain.ViolatedField(err))
}

func TestValidarProducto_TablasExternasAusentes_OmiteVerificacion(t *testing.T) {
	v := integrity.NewProductoValidator(newProductosMem(), &referenciasMem{tablasAusentes: true})

	p := productoValido()
	p.ProveedorID = 9999
	p.ImpuestoID = 9999
	assert.NoError(t, v.Validar(p))
}

func TestValidarProducto_UpdateExcluyeLaPropiaFila(t *testing.T) {
	repo := newProductosMem()
	v := integrity.NewProductoValidator(repo, refsConTodo())

	p := productoValido()
	require.NoError(t, repo.Create(p))

	// Mismo nombre, mismo ID: no es duplicado.
	assert.NoError(t, v.Validar(p))
}
