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
	"os/user"
	"strconv"
)

func (r *registry) FindGroupById(gid uint32) (*Record, error) {
	osResult, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))

	if unknownErr, ok := err.(user.UnknownGroupIdError); ok {
		return nil, NotFoundError(unknownErr.Error())
	}

	if err != nil {
		return nil, fmt.Errorf("LookupGroupId: %v", err)
	}

	return convertGroup(osResult)
}

func (r *registry) FindGroupByName(name string) (*Record, error) {
	osResult, err := user.LookupGroup(name)

	if unknownErr, ok := err.(user.UnknownGroupError); ok {
		return nil, NotFoundError(unknownErr.Error())
	}

	if err != nil {
		return nil, fmt.Errorf("LookupGroup: %v", err)
	}

	return convertGroup(osResult)
}

func convertGroup(g *user.Group) (*Record, error) {
	// Attempt to parse the GID.
	gid, err := strconv.ParseUint(g.Gid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Unexpected GID format: %s", g.Gid)
	}

	rec := &Record{
		Category: Group,
		Id:       uint32(gid),
		Name:     g.Name,
	}

	return rec, nil
}
