package symdex

// CollisionPolicy decides how previews with equal base names are stored.
type CollisionPolicy string

// CollisionPolicy constants.
const (
	// CollisionOverwrite writes every preview under its base name; later
	// previews replace earlier ones with the same slug.
	CollisionOverwrite CollisionPolicy = "overwrite"

	// CollisionSuffix appends _2, _3, ... to repeated base names.
	CollisionSuffix CollisionPolicy = "suffix"

	// CollisionHash appends a short hash of the preview content to
	// repeated base names.
	CollisionHash CollisionPolicy = "hash"
)

// ParseCollisionPolicy returns the policy named s.
// An empty string selects CollisionOverwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch p := CollisionPolicy(s); p {
	case "":
		return CollisionOverwrite, nil
	case CollisionOverwrite, CollisionSuffix, CollisionHash:
		return p, nil
	default:
		return "", Errorf(EINVALID, "unknown collision policy %q", s)
	}
}
