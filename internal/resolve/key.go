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

package resolve

import (
	"fmt"
	"strconv"
)

// Key identifies the account to look up: either a numeric ID or a name. The
// zero value is the missing key, and is rejected by every Resolver method.
type Key struct {
	valid bool
	isId  bool
	id    uint64
	name  string
}

// IdKey returns a key for the given numeric ID.
func IdKey(id uint64) Key {
	return Key{valid: true, isId: true, id: id}
}

// NameKey returns a key for the given account name. Strings made up entirely
// of decimal digits are treated as IDs; those too large to parse become the
// largest possible ID so that they are rejected rather than wrapped. The empty
// string yields the missing key.
func NameKey(name string) Key {
	if name == "" {
		return Key{}
	}

	if isDigits(name) {
		// ParseUint returns the maximum value along with ErrRange on overflow.
		id, _ := strconv.ParseUint(name, 10, 64)
		return IdKey(id)
	}

	return Key{valid: true, name: name}
}

// accountNameKey returns a key for a name reported by the account database.
// Unlike NameKey it never treats the name as an ID. ok is false for the empty
// name.
func accountNameKey(name string) (k Key, ok bool) {
	if name == "" {
		return
	}

	k = Key{valid: true, name: name}
	ok = true
	return
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// Valid reports whether the key is not the missing key.
func (k Key) Valid() bool {
	return k.valid
}

// Id returns the key's numeric ID, if it has one.
func (k Key) Id() (id uint64, ok bool) {
	return k.id, k.isId
}

// Name returns the key's name, or the empty string for ID keys.
func (k Key) Name() string {
	return k.name
}

func (k Key) String() string {
	switch {
	case !k.valid:
		return "<missing key>"
	case k.isId:
		return strconv.FormatUint(k.id, 10)
	}

	return fmt.Sprintf("%q", k.name)
}
