package mcdata

import "strconv"

// EntityKind separates entities spawned as mobs from those spawned as objects.
// The two kinds use different id tables on the wire.
type EntityKind uint8

const (
	KindOther EntityKind = iota
	KindLiving
	KindObject
)

func (k EntityKind) String() string {
	switch k {
	case KindLiving:
		return "living"
	case KindObject:
		return "object"
	default:
		return "other"
	}
}

// EntityType is the server side entity type.
type EntityType uint16

const (
	EntityUnknown EntityType = iota
	EntityPlayer
	EntityItem
	EntityExpOrb
	EntityPainting

	EntityWitherSkeleton
	EntityWolf
	EntityRabbit
	EntityChicken
	EntityCow
	EntitySheep
	EntityPig
	EntityMushroomCow
	EntityShulker
	EntityGuardian
	EntityEndermite
	EntityWitch
	EntityBat
	EntityWither
	EntityEnderDragon
	EntityMagmaCube
	EntityBlaze
	EntitySilverfish
	EntityCaveSpider
	EntityEnderman
	EntityZombiePigman
	EntityGhast
	EntitySlime
	EntityZombie
	EntityGiant
	EntitySpider
	EntitySkeleton
	EntityCreeper
	EntityVillager
	EntityMule
	EntityDonkey
	EntityZombieHorse
	EntitySkeletonHorse
	EntityZombieVillager
	EntityHusk
	EntitySquid
	EntityStray
	EntityPolarBear
	EntityElderGuardian
	EntityCommonHorse
	EntityIronGolem
	EntityOcelot
	EntitySnowman
	EntityLlama
	EntityParrot
	EntityArmorStandMob

	EntityFirework
	EntityArmorStandObject
	EntityTNT
	EntityFallingObject
	EntityExpBottle
	EntityEnderEye
	EntityEnderCrystal
	EntityShulkerBullet
	EntityFishingFloat
	EntityDragonFireball
	EntityArrow
	EntitySnowball
	EntityEgg
	EntityMinecart
	EntityFireball
	EntityPotion
	EntityEnderPearl
	EntityLeashKnot
	EntityWitherSkull
	EntityBoat
	EntityFireCharge
	EntityAreaEffectCloud
	EntityMinecartHopper
	EntityMinecartTNT
	EntityMinecartChest
	EntityMinecartCommand
	EntityMinecartFurnace
	EntityLlamaSpit
	EntityEvocatorFangs

	entityTypeCount
)

type entityInfo struct {
	name string
	kind EntityKind
}

var entityTypes = [entityTypeCount]entityInfo{
	EntityUnknown:  {"unknown", KindOther},
	EntityPlayer:   {"player", KindOther},
	EntityItem:     {"item", KindOther},
	EntityExpOrb:   {"xp_orb", KindOther},
	EntityPainting: {"painting", KindOther},

	EntityWitherSkeleton: {"wither_skeleton", KindLiving},
	EntityWolf:           {"wolf", KindLiving},
	EntityRabbit:         {"rabbit", KindLiving},
	EntityChicken:        {"chicken", KindLiving},
	EntityCow:            {"cow", KindLiving},
	EntitySheep:          {"sheep", KindLiving},
	EntityPig:            {"pig", KindLiving},
	EntityMushroomCow:    {"mooshroom", KindLiving},
	EntityShulker:        {"shulker", KindLiving},
	EntityGuardian:       {"guardian", KindLiving},
	EntityEndermite:      {"endermite", KindLiving},
	EntityWitch:          {"witch", KindLiving},
	EntityBat:            {"bat", KindLiving},
	EntityWither:         {"wither", KindLiving},
	EntityEnderDragon:    {"ender_dragon", KindLiving},
	EntityMagmaCube:      {"magma_cube", KindLiving},
	EntityBlaze:          {"blaze", KindLiving},
	EntitySilverfish:     {"silverfish", KindLiving},
	EntityCaveSpider:     {"cave_spider", KindLiving},
	EntityEnderman:       {"enderman", KindLiving},
	EntityZombiePigman:   {"zombie_pigman", KindLiving},
	EntityGhast:          {"ghast", KindLiving},
	EntitySlime:          {"slime", KindLiving},
	EntityZombie:         {"zombie", KindLiving},
	EntityGiant:          {"giant", KindLiving},
	EntitySpider:         {"spider", KindLiving},
	EntitySkeleton:       {"skeleton", KindLiving},
	EntityCreeper:        {"creeper", KindLiving},
	EntityVillager:       {"villager", KindLiving},
	EntityMule:           {"mule", KindLiving},
	EntityDonkey:         {"donkey", KindLiving},
	EntityZombieHorse:    {"zombie_horse", KindLiving},
	EntitySkeletonHorse:  {"skeleton_horse", KindLiving},
	EntityZombieVillager: {"zombie_villager", KindLiving},
	EntityHusk:           {"husk", KindLiving},
	EntitySquid:          {"squid", KindLiving},
	EntityStray:          {"stray", KindLiving},
	EntityPolarBear:      {"polar_bear", KindLiving},
	EntityElderGuardian:  {"elder_guardian", KindLiving},
	EntityCommonHorse:    {"horse", KindLiving},
	EntityIronGolem:      {"iron_golem", KindLiving},
	EntityOcelot:         {"ocelot", KindLiving},
	EntitySnowman:        {"snow_golem", KindLiving},
	EntityLlama:          {"llama", KindLiving},
	EntityParrot:         {"parrot", KindLiving},
	EntityArmorStandMob:  {"armor_stand_mob", KindLiving},

	EntityFirework:         {"fireworks_rocket", KindObject},
	EntityArmorStandObject: {"armor_stand", KindObject},
	EntityTNT:              {"tnt", KindObject},
	EntityFallingObject:    {"falling_block", KindObject},
	EntityExpBottle:        {"xp_bottle", KindObject},
	EntityEnderEye:         {"eye_of_ender_signal", KindObject},
	EntityEnderCrystal:     {"ender_crystal", KindObject},
	EntityShulkerBullet:    {"shulker_bullet", KindObject},
	EntityFishingFloat:     {"fishing_hook", KindObject},
	EntityDragonFireball:   {"dragon_fireball", KindObject},
	EntityArrow:            {"arrow", KindObject},
	EntitySnowball:         {"snowball", KindObject},
	EntityEgg:              {"egg", KindObject},
	EntityMinecart:         {"minecart", KindObject},
	EntityFireball:         {"fireball", KindObject},
	EntityPotion:           {"splash_potion", KindObject},
	EntityEnderPearl:       {"ender_pearl", KindObject},
	EntityLeashKnot:        {"leash_knot", KindObject},
	EntityWitherSkull:      {"wither_skull", KindObject},
	EntityBoat:             {"boat", KindObject},
	EntityFireCharge:       {"small_fireball", KindObject},
	EntityAreaEffectCloud:  {"area_effect_cloud", KindObject},
	EntityMinecartHopper:   {"hopper_minecart", KindObject},
	EntityMinecartTNT:      {"tnt_minecart", KindObject},
	EntityMinecartChest:    {"chest_minecart", KindObject},
	EntityMinecartCommand:  {"command_block_minecart", KindObject},
	EntityMinecartFurnace:  {"furnace_minecart", KindObject},
	EntityLlamaSpit:        {"llama_spit", KindObject},
	EntityEvocatorFangs:    {"evocation_fang", KindObject},
}

// EntityTypes returns every known entity type in declaration order.
func EntityTypes() []EntityType {
	types := make([]EntityType, 0, entityTypeCount)
	for t := EntityType(0); t < entityTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Kind returns the spawn kind of t.
func (t EntityType) Kind() EntityKind {
	if t >= entityTypeCount {
		return KindOther
	}
	return entityTypes[t].kind
}

func (t EntityType) String() string {
	if t >= entityTypeCount {
		return "EntityType(" + strconv.Itoa(int(t)) + ")"
	}
	return entityTypes[t].name
}
