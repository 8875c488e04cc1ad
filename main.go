package main

import (
	"fmt"
	"os"
	"strconv"

	"aoc2023/days"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("No day argument.")
		return
	}
	day, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Println("Invalid day argument.")
		return
	}

	switch day {
	case 1:
		days.Day01()
	case 2:
		days.Day02()
	case 3:
		days.Day03()
	case 4:
		days.Day04()
	case 5:
		days.Day05()
	case 6:
		days.Day06()
	case 7:
		days.Day07()
	case 8:
		days.Day08()
	case 9:
		days.Day09()
	case 10:
		days.Day10()
	default:
		fmt.Println("Invalid day argument.")
	}
}
