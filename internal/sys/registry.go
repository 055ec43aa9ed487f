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

// Package sys contains types and functions useful for finding system account
// information.
package sys

// Registry represents an object that knows about the system's user and group
// account databases.
//
// The Find methods use the indexed lookups offered by the OS, and return a
// NotFoundError when the name or ID is unknown. The List methods return every
// record in the database in enumeration order.
type Registry interface {
	FindUserById(uid uint32) (*Record, error)
	FindUserByName(name string) (*Record, error)
	ListUsers() ([]*Record, error)

	FindGroupById(gid uint32) (*Record, error)
	FindGroupByName(name string) (*Record, error)
	ListGroups() ([]*Record, error)
}

// Return a registry hooked up to the system's real account databases.
// Enumeration reads the supplied passwd and group files.
func NewRegistry(passwdFile string, groupFile string) Registry {
	return &registry{
		passwdFile: passwdFile,
		groupFile:  groupFile,
	}
}

type registry struct {
	passwdFile string
	groupFile  string
}
