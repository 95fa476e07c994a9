package demo

import (
	"context"
	"io"

	"go.lepak.sg/patterns/casino"
	"go.lepak.sg/patterns/iterator"
	"go.lepak.sg/patterns/menu"
	"go.lepak.sg/patterns/sample"
)

func (n *Narrator) iteratorSection(ctx context.Context) {
	n.title("ITERATOR PATTERN: one loop, many collections")
	n.printf("Each menu below stores its items differently, but the waitress\n")
	n.printf("prints all of them with the same HasNext/Next loop.\n")

	menus := sample.Menus(ctx)
	pancake := sample.PancakeHouseMenu(menus)
	diner, err := sample.DinerMenu(menus)
	if err != nil {
		n.err = err
		return
	}
	cafe := sample.CafeMenu(menus)

	n.colorf(n.emphasis, "\nPANCAKE HOUSE MENU (a growable list):\n")
	n.write(func(w io.Writer) error { return menu.PrintIterator(w, pancake.Iterator()) })
	n.pause("Press ENTER to print the diner menu...")

	n.colorf(n.emphasis, "\nDINER MENU (a fixed size array):\n")
	n.write(func(w io.Writer) error { return menu.PrintIterator(w, diner.Iterator()) })
	n.pause("Press ENTER to print the cafe menu...")

	n.colorf(n.emphasis, "\nCAFE MENU (a map, iterated in name order):\n")
	n.write(func(w io.Writer) error { return menu.PrintIterator(w, cafe.Iterator()) })

	n.printf("\nThe client code is the same for all three:\n\n")
	n.colorf(n.code, "\tfor it.HasNext() {\n\t\titem, _ := it.Next()\n\t\tfmt.Println(item.Name(), item.Price())\n\t}\n")
	n.pause("Press ENTER for the casino catalogs...")

	games := sample.Casino(ctx)
	slots := sample.SlotsCatalog(games)
	table, err := sample.TableGamesCatalog(games)
	if err != nil {
		n.err = err
		return
	}
	all := sample.GameCatalog(games)

	n.colorf(n.emphasis, "\nSLOTS (list):\n")
	n.printGames(slots.Iterator())
	n.colorf(n.emphasis, "\nTABLE GAMES (array of %d):\n", sample.TableGamesCapacity)
	n.printGames(table.Iterator())
	n.colorf(n.emphasis, "\nEVERY GAME BY RTP (keyed by ID):\n")
	n.printGames(all.Iterator())

	n.bullets(n.emphasis, "ITERATOR PATTERN BENEFITS:",
		"The same loop works for every collection",
		"Callers never see how items are stored",
		"New collection types need no client changes",
	)
}

func (n *Narrator) printGames(it iterator.Iterator[casino.Game]) {
	iterator.ForEach(it, func(g casino.Game) bool {
		n.printf("  %s\n", g)
		return n.err == nil
	})
}

func (n *Narrator) compositeSection(ctx context.Context) {
	n.title("COMPOSITE PATTERN: trees of games")
	n.printf("Categories hold games and other categories. Both are nodes,\n")
	n.printf("so the whole tree is printed and searched the same way.\n\n")

	m := casino.NewManager(sample.Casino(ctx))

	n.write(m.ShowAllGames)
	n.pause("Press ENTER to search the tree...")

	n.printf("\n")
	n.write(func(w io.Writer) error { return m.ShowHighRTPGames(w, casino.DefaultHighRTP) })
	n.printf("\n")
	n.write(func(w io.Writer) error { return m.ShowGamesByCategory(w, "Live") })
	n.printf("\n")
	n.write(func(w io.Writer) error { return m.ShowGamesByProvider(w, "Evolution") })

	n.bullets(n.emphasis, "COMPOSITE PATTERN BENEFITS:",
		"Leaves and containers are handled uniformly",
		"Nesting can go as deep as needed",
		"Searches reach every game whatever its depth",
	)
}

func (n *Narrator) combinedSection(ctx context.Context) {
	n.title("ITERATOR + COMPOSITE: walking a menu tree")

	ws := menu.NewWaitress(sample.Menus(ctx))

	n.printf("Every menu, with the dessert menu nested inside the diner menu:\n\n")
	n.write(ws.PrintMenu)
	n.pause("Press ENTER to iterate over the whole tree...")

	n.printf("\nA depth-first iterator visits every node; containers are skipped\n")
	n.printf("when looking for vegetarian dishes:\n\n")
	n.write(ws.PrintVegetarianMenu)

	n.printf("\n")
	n.colorf(n.code, "\tit := all.Traverse()\n\tfor it.HasNext() {\n\t\tnode, _ := it.Next()\n\t\tif item, ok := composite.ItemOf(node); ok && item.Vegetarian() {\n\t\t\tfmt.Println(item)\n\t\t}\n\t}\n")
}

func (n *Narrator) summarySection() {
	n.title("SUMMARY")

	n.bullets(n.heading, "ITERATOR PATTERN:",
		"Uniform access to different collection types",
		"Iteration logic lives with the collection",
		"Each iterator is independent of the others",
	)
	n.bullets(n.heading, "COMPOSITE PATTERN:",
		"Objects are composed into trees",
		"Single objects and groups share one interface",
		"Operations recurse over the structure",
	)
	n.bullets(n.heading, "TOGETHER:",
		"A depth-first iterator walks a composite tree",
		"Client code stays small as the tree grows",
	)
}
