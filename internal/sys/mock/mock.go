// This file was auto-generated using createmock. See the following page for
// more information:
//
//     https://github.com/jacobsa/oglemock
//

package mock_sys

import (
	fmt "fmt"
	runtime "runtime"
	unsafe "unsafe"

	sys "github.com/jacobsa/idresolve/internal/sys"
	oglemock "github.com/jacobsa/oglemock"
)

type MockRegistry interface {
	sys.Registry
	oglemock.MockObject
}

type mockRegistry struct {
	controller  oglemock.Controller
	description string
}

func NewMockRegistry(
	c oglemock.Controller,
	desc string) MockRegistry {
	return &mockRegistry{
		controller:  c,
		description: desc,
	}
}

func (m *mockRegistry) Oglemock_Id() uintptr {
	return uintptr(unsafe.Pointer(m))
}

func (m *mockRegistry) Oglemock_Description() string {
	return m.description
}

func (m *mockRegistry) FindUserById(p0 uint32) (o0 *sys.Record, o1 error) {
	// Get a file name and line number for the caller.
	_, file, line, _ := runtime.Caller(1)

	// Hand the call off to the controller, which does most of the work.
	retVals := m.controller.HandleMethodCall(
		m,
		"FindUserById",
		file,
		line,
		[]interface{}{p0})

	if len(retVals) != 2 {
		panic(fmt.Sprintf("mockRegistry.FindUserById: invalid return values: %v", retVals))
	}

	// o0 *sys.Record
	if retVals[0] != nil {
		o0 = retVals[0].(*sys.Record)
	}

	// o1 error
	if retVals[1] != nil {
		o1 = retVals[1].(error)
	}

	return
}

func (m *mockRegistry) FindUserByName(p0 string) (o0 *sys.Record, o1 error) {
	// Get a file name and line number for the caller.
	_, file, line, _ := runtime.Caller(1)

	// Hand the call off to the controller, which does most of the work.
	retVals := m.controller.HandleMethodCall(
		m,
		"FindUserByName",
		file,
		line,
		[]interface{}{p0})

	if len(retVals) != 2 {
		panic(fmt.Sprintf("mockRegistry.FindUserByName: invalid return values: %v", retVals))
	}

	// o0 *sys.Record
	if retVals[0] != nil {
		o0 = retVals[0].(*sys.Record)
	}

	// o1 error
	if retVals[1] != nil {
		o1 = retVals[1].(error)
	}

	return
}

func (m *mockRegistry) ListUsers() (o0 []*sys.Record, o1 error) {
	// Get a file name and line number for the caller.
	_, file, line, _ := runtime.Caller(1)

	// Hand the call off to the controller, which does most of the work.
	retVals := m.controller.HandleMethodCall(
		m,
		"ListUsers",
		file,
		line,
		[]interface{}{})

	if len(retVals) != 2 {
		panic(fmt.Sprintf("mockRegistry.ListUsers: invalid return values: %v", retVals))
	}

	// o0 []*sys.Record
	if retVals[0] != nil {
		o0 = retVals[0].([]*sys.Record)
	}

	// o1 error
	if retVals[1] != nil {
		o1 = retVals[1].(error)
	}

	return
}

func (m *mockRegistry) FindGroupById(p0 uint32) (o0 *sys.Record, o1 error) {
	// Get a file name and line number for the caller.
	_, file, line, _ := runtime.Caller(1)

	// Hand the call off to the controller, which does most of the work.
	retVals := m.controller.HandleMethodCall(
		m,
		"FindGroupById",
		file,
		line,
		[]interface{}{p0})

	if len(retVals) != 2 {
		panic(fmt.Sprintf("mockRegistry.FindGroupById: invalid return values: %v", retVals))
	}

	// o0 *sys.Record
	if retVals[0] != nil {
		o0 = retVals[0].(*sys.Record)
	}

	// o1 error
	if retVals[1] != nil {
		o1 = retVals[1].(error)
	}

	return
}

func (m *mockRegistry) FindGroupByName(p0 string) (o0 *sys.Record, o1 error) {
	// Get a file name and line number for the caller.
	_, file, line, _ := runtime.Caller(1)

	// Hand the call off to the controller, which does most of the work.
	retVals := m.controller.HandleMethodCall(
		m,
		"FindGroupByName",
		file,
		line,
		[]interface{}{p0})

	if len(retVals) != 2 {
		panic(fmt.Sprintf("mockRegistry.FindGroupByName: invalid return values: %v", retVals))
	}

	// o0 *sys.Record
	if retVals[0] != nil {
		o0 = retVals[0].(*sys.Record)
	}

	// o1 error
	if retVals[1] != nil {
		o1 = retVals[1].(error)
	}

	return
}

func (m *mockRegistry) ListGroups() (o0 []*sys.Record, o1 error) {
	// Get a file name and line number for the caller.
	_, file, line, _ := runtime.Caller(1)

	// Hand the call off to the controller, which does most of the work.
	retVals := m.controller.HandleMethodCall(
		m,
		"ListGroups",
		file,
		line,
		[]interface{}{})

	if len(retVals) != 2 {
		panic(fmt.Sprintf("mockRegistry.ListGroups: invalid return values: %v", retVals))
	}

	// o0 []*sys.Record
	if retVals[0] != nil {
		o0 = retVals[0].([]*sys.Record)
	}

	// o1 error
	if retVals[1] != nil {
		o1 = retVals[1].(error)
	}

	return
}
