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

// Package resolve maps user and group names to IDs and back through the
// system account databases, falling back to a full scan of the database when
// the indexed lookups contradict each other.
package resolve

import (
	"log"
	"math"

	"github.com/jacobsa/idresolve/internal/sys"
	"github.com/jacobsa/idresolve/internal/util"
)

// Resolver answers questions about accounts. Lookup failures of any kind are
// reported as an absent result rather than an error.
type Resolver struct {
	registry sys.Registry
	logger   *log.Logger

	// IDs larger than this are refused without consulting the registry.
	maxId uint64
}

// Create a resolver that consults the supplied registry. Numeric keys larger
// than maxId are refused and logged.
func NewResolver(
	registry sys.Registry,
	maxId uint64,
	logger *log.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		logger:   logger,
		maxId:    maxId,
	}
}

func checkKey(k Key) {
	if !k.Valid() {
		panic("missing lookup key")
	}
}

// GetField looks up the account identified by k in the database for
// category c and returns the value of field f. See sys.Record.Get for value
// types. ok is false if the account can't be found, the lookup fails, or the
// field doesn't apply.
//
// GetField panics if k is the missing key.
func (r *Resolver) GetField(
	c sys.Category,
	f sys.Field,
	k Key) (v interface{}, ok bool) {
	checkKey(k)
	info := c.Info()

	var rec *sys.Record
	var err error

	if id, isId := k.Id(); isId {
		if id > r.maxId || id > math.MaxUint32 {
			r.logger.Printf(
				"Refusing to look up %s ID %d: larger than the maximum of %d",
				c,
				id,
				r.maxId)
			return
		}

		rec, err = info.FindById(r.registry, uint32(id))
	} else {
		rec, err = info.FindByName(r.registry, k.Name())
	}

	if err != nil {
		if _, notFound := err.(sys.NotFoundError); !notFound {
			r.logger.Printf("Looking up %s %v: %v", c, k, err)
		}

		return
	}

	v, ok = rec.Get(f)
	return
}

// ResolveId returns the ID of the account identified by k, after checking
// that the indexed lookups agree with each other in both directions. When
// they don't, the whole database is scanned for a record matching k.
//
// ResolveId panics if k is the missing key.
func (r *Resolver) ResolveId(c sys.Category, k Key) (id uint32, ok bool) {
	checkKey(k)
	info := c.Info()

	var rec *sys.Record

	if keyId, isId := k.Id(); isId {
		// ID -> name -> ID.
		v, found := r.GetField(c, sys.FieldName, k)
		if !found {
			return
		}

		// A record without a name can't be checked, so count it as a mismatch.
		if nameKey, named := accountNameKey(v.(string)); named {
			v, found = r.GetField(c, info.IdField, nameKey)
			if found && uint64(v.(uint32)) == keyId {
				id = v.(uint32)
				ok = true
				return
			}
		}

		// GetField refused anything above 32 bits, so this doesn't truncate.
		rec, ok = r.SearchField(c, info.IdField, uint32(keyId))
	} else {
		// Name -> ID -> name.
		v, found := r.GetField(c, info.IdField, k)
		if !found {
			return
		}

		candidate := v.(uint32)
		v, found = r.GetField(c, sys.FieldName, IdKey(uint64(candidate)))
		if found && v.(string) == k.Name() {
			id = candidate
			ok = true
			return
		}

		rec, ok = r.SearchField(c, sys.FieldName, k.Name())
	}

	if ok {
		id = rec.Id
	}

	return
}

// SearchField scans every record in the database for category c and returns
// the first whose field f equals value. Values for ID fields may be given as
// any integer type; those outside the 32-bit ID range match nothing. An
// enumeration failure is logged and treated as finding nothing.
func (r *Resolver) SearchField(
	c sys.Category,
	f sys.Field,
	value interface{}) (rec *sys.Record, ok bool) {
	value, valid := normalizeValue(value)
	if !valid {
		return
	}

	records, err := c.Info().List(r.registry)
	if err != nil {
		r.logger.Printf("Listing %s database: %v", c, err)
		return
	}

	for _, candidate := range records {
		if v, present := candidate.Get(f); present && v == value {
			rec = candidate
			ok = true
			return
		}
	}

	return
}

// Convert integer values to the uint32 used by sys.Record.Get for ID fields.
// ok is false for integers that can't be an ID.
func normalizeValue(value interface{}) (v interface{}, ok bool) {
	var signed int64
	var unsigned uint64

	switch x := value.(type) {
	case int:
		signed = int64(x)
	case int8:
		signed = int64(x)
	case int16:
		signed = int64(x)
	case int32:
		signed = int64(x)
	case int64:
		signed = x
	case uint:
		unsigned = uint64(x)
	case uint8:
		unsigned = uint64(x)
	case uint16:
		unsigned = uint64(x)
	case uint32:
		unsigned = uint64(x)
	case uint64:
		unsigned = x
	default:
		v = value
		ok = true
		return
	}

	if signed < 0 {
		return
	}

	if signed > 0 {
		unsigned = uint64(signed)
	}

	if unsigned > math.MaxUint32 {
		return
	}

	v = uint32(unsigned)
	ok = true
	return
}

// GroupsOf returns the names of the groups that list username as a member,
// in enumeration order. A group name appears at most once even if the
// database contains several entries for it. An enumeration failure is logged
// and treated as finding nothing.
func (r *Resolver) GroupsOf(username string) (groups []string) {
	records, err := r.registry.ListGroups()
	if err != nil {
		r.logger.Printf("Listing group database: %v", err)
		return
	}

	names := util.NewOrderedStringSet()
	for _, g := range records {
		if g.HasMember(username) {
			names.Add(g.Name)
		}
	}

	groups = names.Elements()
	return
}
