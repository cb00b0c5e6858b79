package primitive

// Role tags an edge with the output of its driver it carries. Only edges
// leaving an ARI1 (or a voter standing in for one) carry Y, S or FCO.
type Role int

const (
	RolePlain Role = iota
	RoleY
	RoleS
	RoleFCO
)

func (r Role) String() string {
	switch r {
	case RoleY:
		return "Y"
	case RoleS:
		return "S"
	case RoleFCO:
		return "FCO"
	}
	return "plain"
}

// OutputRole returns the role of output position pos of kind k.
func OutputRole(k Kind, pos int) Role {
	if k != KindARI1 {
		return RolePlain
	}
	switch pos {
	case 0:
		return RoleY
	case 1:
		return RoleS
	}
	return RoleFCO
}
