package entity

// Role es el rol de un usuario del panel.
type Role string

// Roles válidos para User.
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	RoleAuditor Role = "auditor"
)

// Capacidades que consultan las vistas. PermissionAll es el comodín del rol admin.
const (
	PermissionAll = "all"

	PermProductsRead   = "products.read"
	PermProductsWrite  = "products.write"
	PermSuppliersRead  = "suppliers.read"
	PermSuppliersWrite = "suppliers.write"
	PermCustomersRead  = "customers.read"
	PermCustomersWrite = "customers.write"
	PermOrdersRead     = "orders.read"
	PermOrdersWrite    = "orders.write"
	PermStockRead      = "stock.read"
	PermStockWrite     = "stock.write"
	PermReportsRead    = "reports.read"
)

// rolePermissions es la tabla rol → permisos. Es fija y no se configura en runtime.
var rolePermissions = map[Role][]string{
	RoleAdmin: {PermissionAll},
	RoleManager: {
		PermProductsRead, PermProductsWrite,
		PermSuppliersRead, PermSuppliersWrite,
		PermCustomersRead, PermCustomersWrite,
		PermOrdersRead, PermOrdersWrite,
		PermStockRead, PermStockWrite,
		PermReportsRead,
	},
	RoleStaff: {
		PermProductsRead, PermProductsWrite,
		PermCustomersRead, PermCustomersWrite,
		PermOrdersRead, PermOrdersWrite,
		PermStockRead, PermStockWrite,
	},
	RoleAuditor: {
		PermProductsRead,
		PermSuppliersRead,
		PermCustomersRead,
		PermOrdersRead,
		PermStockRead,
		PermReportsRead,
	},
}

// Valid indica si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// RolePermissions devuelve una copia de los permisos por defecto del rol (nil si el rol no existe).
func RolePermissions(r Role) []string {
	perms, ok := rolePermissions[r]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission aplica la regla de autorización: comodín "all" o coincidencia exacta.
// No hay coincidencia jerárquica ni por prefijo.
func HasPermission(perms []string, capability string) bool {
	for _, p := range perms {
		if p == PermissionAll || p == capability {
			return true
		}
	}
	return false
}

// User es el usuario autenticado. Se crea solo vía login y es inmutable después.
// Las etiquetas JSON definen el registro persistido de la sesión.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// Can es un atajo de HasPermission sobre los permisos del usuario.
func (u *User) Can(capability string) bool {
	if u == nil {
		return false
	}
	return HasPermission(u.Permissions, capability)
}

// Clone devuelve una copia independiente del usuario.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Permissions = append([]string(nil), u.Permissions...)
	return &c
}

// Credential asocia un usuario con el hash bcrypt de su contraseña.
type Credential struct {
	User         User
	PasswordHash string
}
