// Copyright 2016 Aaron Jacobs. All Rights Reserved.
// Author: aaronjjacobs@gmail.com (Aaron Jacobs)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sys

// A symbolic attribute of an account record.
type Field string

const (
	FieldUid     Field = "uid"
	FieldGid     Field = "gid"
	FieldName    Field = "name"
	FieldGecos   Field = "gecos"
	FieldHomeDir Field = "dir"
)

// Record is a single entry from the user or group account database.
type Record struct {
	Category Category

	// The UID for users, the GID for groups.
	Id   uint32
	Name string

	// User records only. Gid is the user's primary group.
	Gid     uint32
	Gecos   string
	HomeDir string

	// Group records only. The names of the group's supplementary members. Only
	// records produced by enumeration carry a member list.
	Members []string
}

// Get returns the value of the given field, which is a uint32 for ID fields
// and a string for everything else. ok is false if the field does not apply
// to the record's category.
func (r *Record) Get(f Field) (v interface{}, ok bool) {
	switch f {
	case FieldName:
		return r.Name, true

	case FieldUid:
		if r.Category == User {
			return r.Id, true
		}

	case FieldGid:
		if r.Category == Group {
			return r.Id, true
		}

		return r.Gid, true

	case FieldGecos:
		if r.Category == User {
			return r.Gecos, true
		}

	case FieldHomeDir:
		if r.Category == User {
			return r.HomeDir, true
		}
	}

	return
}

// HasMember reports whether the named user is listed as a member of the
// group.
func (r *Record) HasMember(username string) bool {
	for _, m := range r.Members {
		if m == username {
			return true
		}
	}

	return false
}
