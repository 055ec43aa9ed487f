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

package sys_test

import (
	"os/user"
	"strconv"
	"testing"

	"github.com/jacobsa/idresolve/internal/sys"
	. "github.com/jacobsa/oglematchers"
	. "github.com/jacobsa/ogletest"
)

func TestGroupRegistry(t *testing.T) { RunTests(t) }

////////////////////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////////////////////

type GroupRegistryTest struct {
	registry sys.Registry
}

func init() { RegisterTestSuite(&GroupRegistryTest{}) }

func (t *GroupRegistryTest) SetUp(i *TestInfo) {
	t.registry = sys.NewRegistry("/etc/passwd", "/etc/group")
}

////////////////////////////////////////////////////////////////////////
// Tests
////////////////////////////////////////////////////////////////////////

func (t *GroupRegistryTest) UnknownGroupname() {
	_, err := t.registry.FindGroupByName("jksdlhfy9823h4bnkqjsahdjkahsd")

	notFoundErr, ok := err.(sys.NotFoundError)
	AssertTrue(ok, "%v", err)
	ExpectThat(notFoundErr, HasSubstr("jksdlhfy9823h4bnkqjsahdjkahsd"))
	ExpectThat(notFoundErr, HasSubstr("unknown"))
}

func (t *GroupRegistryTest) UnknownGroupId() {
	_, err := t.registry.FindGroupById(17192325)

	notFoundErr, ok := err.(sys.NotFoundError)
	AssertTrue(ok, "%v", err)
	ExpectThat(notFoundErr, HasSubstr("171923"))
	ExpectThat(notFoundErr, HasSubstr("unknown"))
}

func (t *GroupRegistryTest) LookUpCurrentGroup() {
	// Ask the os package for the current user's primary group.
	osUser, err := user.Current()
	AssertEq(nil, err)

	osGroup, err := user.LookupGroupId(osUser.Gid)
	AssertEq(nil, err)
	AssertNe("", osGroup.Name)

	osGid, err := strconv.Atoi(osGroup.Gid)
	AssertEq(nil, err)

	// Look it up in both ways.
	rec, err := t.registry.FindGroupById(uint32(osGid))
	AssertEq(nil, err)
	ExpectEq(sys.Group, rec.Category)
	ExpectEq(osGroup.Name, rec.Name)

	rec, err = t.registry.FindGroupByName(osGroup.Name)
	AssertEq(nil, err)
	ExpectEq(osGid, rec.Id)
}

func (t *GroupRegistryTest) LookUpGroupZero() {
	// Ask the os package for whatever GID 0 is called here (root on Linux,
	// wheel on Darwin).
	osGroup, err := user.LookupGroupId("0")
	AssertEq(nil, err)
	AssertNe("", osGroup.Name)

	// Look it up in both ways.
	rec, err := t.registry.FindGroupById(0)
	AssertEq(nil, err)
	ExpectEq(osGroup.Name, rec.Name)

	rec, err = t.registry.FindGroupByName(osGroup.Name)
	AssertEq(nil, err)
	ExpectEq(0, rec.Id)
}
