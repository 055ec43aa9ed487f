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

func (r *registry) FindUserById(uid uint32) (*Record, error) {
	osResult, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))

	if unknownErr, ok := err.(user.UnknownUserIdError); ok {
		return nil, NotFoundError(unknownErr.Error())
	}

	if err != nil {
		return nil, fmt.Errorf("LookupId: %v", err)
	}

	return convertUser(osResult)
}

func (r *registry) FindUserByName(name string) (*Record, error) {
	osResult, err := user.Lookup(name)

	if unknownErr, ok := err.(user.UnknownUserError); ok {
		return nil, NotFoundError(unknownErr.Error())
	}

	if err != nil {
		return nil, fmt.Errorf("Lookup: %v", err)
	}

	return convertUser(osResult)
}

func convertUser(u *user.User) (*Record, error) {
	// Attempt to parse the UID and GID.
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Unexpected UID format: %s", u.Uid)
	}

	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Unexpected GID format: %s", u.Gid)
	}

	rec := &Record{
		Category: User,
		Id:       uint32(uid),
		Name:     u.Username,
		Gid:      uint32(gid),
		Gecos:    u.Name,
		HomeDir:  u.HomeDir,
	}

	return rec, nil
}
