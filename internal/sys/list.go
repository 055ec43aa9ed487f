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

import (
	"fmt"
	"math"

	"github.com/moby/sys/user"
)

func (r *registry) ListUsers() (records []*Record, err error) {
	users, err := user.ParsePasswdFile(r.passwdFile)
	if err != nil {
		err = fmt.Errorf("ParsePasswdFile: %v", err)
		return
	}

	for _, u := range users {
		// Skip entries whose IDs don't fit in 32 bits.
		if !validId(u.Uid) || !validId(u.Gid) {
			continue
		}

		records = append(records, &Record{
			Category: User,
			Id:       uint32(u.Uid),
			Name:     u.Name,
			Gid:      uint32(u.Gid),
			Gecos:    u.Gecos,
			HomeDir:  u.Home,
		})
	}

	return
}

func (r *registry) ListGroups() (records []*Record, err error) {
	groups, err := user.ParseGroupFile(r.groupFile)
	if err != nil {
		err = fmt.Errorf("ParseGroupFile: %v", err)
		return
	}

	for _, g := range groups {
		if !validId(g.Gid) {
			continue
		}

		records = append(records, &Record{
			Category: Group,
			Id:       uint32(g.Gid),
			Name:     g.Name,
			Members:  g.List,
		})
	}

	return
}

func validId(id int) bool {
	return id >= 0 && int64(id) <= math.MaxUint32
}
