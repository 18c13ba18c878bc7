package model

// UserDataFields is the fixed subset of a user document that joined rows
// carry as their userData snapshot.
var UserDataFields = []string{"district", "email", "image", "name", "uid"}

// UserSnapshot copies the declared subset out of a user document. Fields
// the document lacks are simply absent from the snapshot; the presentation
// helpers default them later.
func UserSnapshot(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(UserDataFields))
	for _, key := range UserDataFields {
		if value, ok := fields[key]; ok {
			out[key] = value
		}
	}
	return out
}
