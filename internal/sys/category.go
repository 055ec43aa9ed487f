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

import "fmt"

// Category selects between the user and group account databases.
type Category int

const (
	Group Category = iota
	User
)

// CategoryInfo describes how records of a category are identified and
// looked up.
type CategoryInfo struct {
	// The field holding the record's numeric ID.
	IdField Field

	FindById   func(Registry, uint32) (*Record, error)
	FindByName func(Registry, string) (*Record, error)

	// Enumerate the complete database for the category.
	List func(Registry) ([]*Record, error)
}

var categories = map[Category]CategoryInfo{
	Group: {
		IdField:    FieldGid,
		FindById:   Registry.FindGroupById,
		FindByName: Registry.FindGroupByName,
		List:       Registry.ListGroups,
	},

	User: {
		IdField:    FieldUid,
		FindById:   Registry.FindUserById,
		FindByName: Registry.FindUserByName,
		List:       Registry.ListUsers,
	},
}

// Info returns the lookup mapping for the category. It panics for values
// other than Group and User.
func (c Category) Info() CategoryInfo {
	info, ok := categories[c]
	if !ok {
		panic(fmt.Sprintf("Unknown category: %d", int(c)))
	}

	return info
}

func (c Category) String() string {
	switch c {
	case Group:
		return "group"
	case User:
		return "user"
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory converts "group" or "user" into a Category.
func ParseCategory(s string) (c Category, err error) {
	switch s {
	case "group":
		c = Group
	case "user":
		c = User
	default:
		err = fmt.Errorf("Unknown category %q; want group or user", s)
	}

	return
}
