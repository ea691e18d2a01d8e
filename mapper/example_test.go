package mapper_test

import (
	"fmt"

	"datamapper/mapper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func ExampleFactory() {
	f := mapper.NewFactory()

	guids, _ := mapper.MapperFor[uuid.UUID](f)
	v, ok, err := guids.TryParsePropValue("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	fmt.Println(guids.ConvertValueToString(v), ok, err)

	longs, _ := mapper.MapperFor[int64](f)
	v, ok, err = longs.TryParsePropValue(decimal.RequireFromString("150.0"))
	fmt.Println(v, ok, err)

	bools, _ := mapper.MapperFor[bool](f)
	v, ok, err = bools.TryParsePropValue("notabool")
	fmt.Println(v, ok, err)

	// Output:
	// {6BA7B810-9DAD-11D1-80B4-00C04FD430C8} true <nil>
	// 150 true <nil>
	// <nil> false <nil>
}

func ExampleRegisterEnum() {
	type Status int

	f := mapper.NewFactory()
	mapper.RegisterEnum(f.Enums(), map[string]Status{"Open": 1, "Closed": 2})

	m, _ := mapper.MapperFor[Status](f)

	v, ok, err := m.TryParsePropValue("Closed")
	fmt.Println(v, ok, err, m.ConvertValueToString(v))

	_, ok, err = m.TryParsePropValue("Archived")
	fmt.Println(ok, err)

	// Output:
	// 2 true <nil> Closed
	// false convert string to mapper_test.Status: unknown enum member: "Archived" in mapper_test.Status
}
