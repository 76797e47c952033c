package ui

const helpText = `
GAME OF LIFE - Generation Explorer

RULES
Every generation each cell looks at its 8 neighbours.
Cells outside the board count as dead (no wraparound).

* A live cell with 2 or 3 live neighbours survives.
* A dead cell with exactly 3 live neighbours is born.
* Every other cell is dead in the next generation.

MOVING THROUGH TIME

* Next / Right arrow / wheel up: next generation
* Previous / Left arrow / wheel down: previous generation
* Jump: go to any generation within 1000 of the current one
* Play: step forward automatically (Space)
* Reset / R: new random board

Generations you have already visited are kept, so going back
and forward again replays them instead of recomputing.

DRAWING

* Enable Draw Mode clears the board
* Click or drag on the board to bring cells to life
* Drawing on a generation discards the generations after it

CHART

The chart shows the percentage of live cells for every
generation up to the one on screen.
`
