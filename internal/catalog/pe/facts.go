package pe

import "gophertunnel_proxy/internal/mcdata"

func registerBlocks(r *registrar) {
	r.blockAndItem(252, 237) // concrete powder
	r.blockAndItem(211, 189) // chain command block
	r.blockAndItem(210, 188) // repeating command block
	r.blockAndItem(208, 198) // grass path
	r.blockAndItem(126, 157) // double wooden slab
	r.blockAndItem(95, 241)  // stained glass
	r.blockAndItem(157, 126) // activator rail
	r.blockAndItem(158, 125) // dropper
	r.blockAndItem(198, 208) // end rod
	r.blockAndItem(199, 240) // chorus plant
	r.blockAndItem(207, 244) // beetroot block
	r.blockAndItem(208, 198) // grass path, again
	r.blockAndItem(212, 207) // frosted ice
	r.blockAndItem(218, 251) // observer

	// Glazed terracotta, white through black. Purple is out of order on PE.
	r.blockAndItem(235, 220)
	r.blockAndItem(236, 221)
	r.blockAndItem(237, 222)
	r.blockAndItem(238, 223)
	r.blockAndItem(239, 224)
	r.blockAndItem(240, 225)
	r.blockAndItem(241, 226)
	r.blockAndItem(242, 227)
	r.blockAndItem(243, 228)
	r.blockAndItem(244, 229)
	r.blockAndItem(245, 219)
	r.blockAndItem(246, 231)
	r.blockAndItem(247, 232)
	r.blockAndItem(248, 233)
	r.blockAndItem(249, 234)
	r.blockAndItem(250, 235)

	r.blockAndItem(251, 236) // concrete
	r.blockAndItem(255, 252) // structure block
	r.blockAndItem(166, 95)  // barrier

	// Nether brick and quartz slabs swap data values.
	r.blockAndItemData(44, 7, 44, 6)
	r.blockAndItemData(44, 14, 44, 15)
	r.blockAndItemData(43, 7, 44, 6)
	r.blockAndItemData(44, 6, 44, 7)
	r.blockAndItemData(44, 15, 44, 14)
	r.blockAndItemData(43, 6, 44, 7)

	// Prismarine variants.
	r.blockAndItemData(168, 1, 168, 2)
	r.blockAndItemData(168, 2, 168, 1)

	r.blockAndItemData(3, 2, 243, 0) // podzol

	// Colored fences fold into fence variants.
	r.blockAndItemForced(188, 85, 1)
	r.blockAndItemForced(189, 85, 2)
	r.blockAndItemForced(190, 85, 3)
	r.blockAndItemForced(192, 85, 4)
	r.blockAndItemForced(191, 85, 5)

	// Shulker boxes fold into one id with the color as data.
	for color := 0; color < mcdata.BlockDataMax; color++ {
		r.blockAndItemForced(219+color, 218, color)
	}
}

func registerItems(r *registrar) {
	r.item(410, 422) // prismarine crystals
	r.item(416, 425) // armor stand
	r.item(425, 446) // banner
	r.item(434, 457) // beetroot
	r.item(435, 458) // beetroot seeds
	r.item(436, 459) // beetroot soup
	r.item(443, 444) // elytra
	r.item(449, 450) // totem
	r.item(450, 445) // shulker shell

	// Records 2256..2267 become 500..511.
	for i := int32(0); i < 12; i++ {
		r.item(2256+i, 500+i)
	}
}

func registerEntities(r *registrar) {
	r.entity(mcdata.EntityWitherSkeleton, 48)
	r.entity(mcdata.EntityWolf, 14)
	r.entity(mcdata.EntityRabbit, 18)
	r.entity(mcdata.EntityChicken, 10)
	r.entity(mcdata.EntityCow, 11)
	r.entity(mcdata.EntitySheep, 13)
	r.entity(mcdata.EntityPig, 12)
	r.entity(mcdata.EntityMushroomCow, 16)
	r.entity(mcdata.EntityShulker, 54)
	r.entity(mcdata.EntityGuardian, 49)
	r.entity(mcdata.EntityEndermite, 55)
	r.entity(mcdata.EntityWitch, 45)
	r.entity(mcdata.EntityBat, 19)
	r.entity(mcdata.EntityWither, 52)
	r.entity(mcdata.EntityEnderDragon, 53)
	r.entity(mcdata.EntityMagmaCube, 42)
	r.entity(mcdata.EntityBlaze, 43)
	r.entity(mcdata.EntitySilverfish, 39)
	r.entity(mcdata.EntityCaveSpider, 40)
	r.entity(mcdata.EntityEnderman, 38)
	r.entity(mcdata.EntityZombiePigman, 36)
	r.entity(mcdata.EntityGhast, 41)
	r.entity(mcdata.EntitySlime, 37)
	r.entity(mcdata.EntityZombie, 32)
	r.entity(mcdata.EntityGiant, 32) // spawned as a zombie, keeps its metadata
	r.entity(mcdata.EntitySpider, 35)
	r.entity(mcdata.EntitySkeleton, 34)
	r.entity(mcdata.EntityCreeper, 33)
	r.entity(mcdata.EntityVillager, 15)
	r.entity(mcdata.EntityMule, 25)
	r.entity(mcdata.EntityDonkey, 24)
	r.entity(mcdata.EntityZombieHorse, 27)
	r.entity(mcdata.EntitySkeletonHorse, 26)
	r.entity(mcdata.EntityZombieVillager, 44)
	r.entity(mcdata.EntityHusk, 47)
	r.entity(mcdata.EntitySquid, 17)
	r.entity(mcdata.EntityStray, 46)
	r.entity(mcdata.EntityPolarBear, 28)
	r.entity(mcdata.EntityElderGuardian, 50)
	r.entity(mcdata.EntityCommonHorse, 23)
	r.entity(mcdata.EntityIronGolem, 20)
	r.entity(mcdata.EntityOcelot, 22)
	r.entity(mcdata.EntitySnowman, 21)
	r.entity(mcdata.EntityLlama, 29)
	r.entity(mcdata.EntityParrot, 30)
	r.entity(mcdata.EntityArmorStandMob, 61)

	r.entity(mcdata.EntityFirework, 8)
	r.entity(mcdata.EntityArmorStandObject, 61)
	r.entity(mcdata.EntityTNT, 65)
	r.entity(mcdata.EntityFallingObject, 66)
	r.entity(mcdata.EntityExpBottle, 68)
	r.entity(mcdata.EntityEnderEye, 70)
	r.entity(mcdata.EntityEnderCrystal, 71)
	r.entity(mcdata.EntityShulkerBullet, 76)
	r.entity(mcdata.EntityFishingFloat, 77)
	r.entity(mcdata.EntityDragonFireball, 79)
	r.entity(mcdata.EntityArrow, 80)
	r.entity(mcdata.EntitySnowball, 81)
	r.entity(mcdata.EntityEgg, 82)
	r.entity(mcdata.EntityMinecart, 84)
	r.entity(mcdata.EntityFireball, 85)
	r.entity(mcdata.EntityPotion, 86)
	r.entity(mcdata.EntityEnderPearl, 87)
	r.entity(mcdata.EntityLeashKnot, 88)
	r.entity(mcdata.EntityWitherSkull, 89)
	r.entity(mcdata.EntityBoat, 90)
	r.entity(mcdata.EntityFireCharge, 94)
	r.entity(mcdata.EntityAreaEffectCloud, 95)
	r.entity(mcdata.EntityMinecartHopper, 96)
	r.entity(mcdata.EntityMinecartTNT, 97)
	r.entity(mcdata.EntityMinecartChest, 98)
	r.entity(mcdata.EntityMinecartCommand, 100)
	r.entity(mcdata.EntityMinecartFurnace, 84) // no furnace minecart on PE
	r.entity(mcdata.EntityAreaEffectCloud, 101)
	r.entity(mcdata.EntityLlamaSpit, 102)
	r.entity(mcdata.EntityEvocatorFangs, 103)
}
